package tui_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titianlabs/pagekit/pkg/editor"
	"github.com/titianlabs/pagekit/pkg/editors/tui"
	"github.com/titianlabs/pagekit/pkg/page"
	"github.com/titianlabs/pagekit/pkg/schema"
	"github.com/titianlabs/pagekit/pkg/store"
)

// scriptedDriver replays queued answers in call order.
type scriptedDriver struct {
	t         *testing.T
	inputs    []string
	textAreas []string
	selects   []int
	infos     []string

	inputIdx    int
	textAreaIdx int
	selectIdx   int
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	require.Less(d.t, d.inputIdx, len(d.inputs), "unexpected input prompt %q", cfg.Message)
	answer := d.inputs[d.inputIdx]
	d.inputIdx++
	if answer == "<default>" {
		return cfg.Default, nil
	}
	return answer, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg tui.ConfirmConfig) (bool, error) {
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	require.Less(d.t, d.selectIdx, len(d.selects), "unexpected select prompt %q", cfg.Message)
	answer := d.selects[d.selectIdx]
	d.selectIdx++
	require.Less(d.t, answer, len(cfg.Options), "scripted choice out of range for %q", cfg.Message)
	return answer, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg tui.TextAreaConfig) (string, error) {
	require.Less(d.t, d.textAreaIdx, len(d.textAreas), "unexpected text area prompt %q", cfg.Message)
	answer := d.textAreas[d.textAreaIdx]
	d.textAreaIdx++
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestFlowEditsAndSavesHomePage(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	e := editor.New(s)

	session, err := e.NewPage(schema.TemplateHome)
	require.NoError(t, err)

	driver := &scriptedDriver{
		t: t,
		inputs: []string{
			"Beranda Utama",            // title
			"<default>",                // keep derived slug
			"Merajut Asa",              // hero_title
			"",                         // hero_subtitle
			"<default>",                // row title, keep seeded value
			"Solusi dari akar rumput.", // row description
		},
		textAreas: []string{
			"Gotong royong.", // manifesto_quote
		},
		selects: []int{
			1, // status: published
			1, // values: edit row
			0, // row #1
			0, // icon: Heart
			3, // values: done
		},
	}

	flow := tui.New(tui.WithDriver(driver))
	result, err := flow.Run(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, result.Valid())

	saved := session.Page()
	assert.Equal(t, "Beranda Utama", saved.Title)
	assert.Equal(t, "beranda-utama", saved.Slug)
	assert.Equal(t, page.StatusPublished, saved.Status)
	assert.Equal(t, "Merajut Asa", saved.Content["hero_title"])
	assert.Equal(t, "Gotong royong.", saved.Content["manifesto_quote"])

	values, ok := saved.Content["values"].([]any)
	require.True(t, ok)
	require.Len(t, values, 1)
	row, ok := values[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bermakna", row["title"])
	assert.Equal(t, "Heart", row["icon"])
	assert.Equal(t, "Solusi dari akar rumput.", row["description"])

	stored, err := s.GetBySlug(context.Background(), "beranda-utama")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, stored.ID)
}

func TestFlowReportsValidationIssues(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	e := editor.New(s)

	session, err := e.NewPage(schema.TemplateHome)
	require.NoError(t, err)

	driver := &scriptedDriver{
		t: t,
		inputs: []string{
			"ab",        // title too short
			"<default>", // slug
			"",          // hero_title
			"",          // hero_subtitle
			"<default>", // row title
			"",          // row description left empty
		},
		textAreas: []string{""},
		selects: []int{
			0, // status: draft
			1, // values: edit row
			0, // row #1
			0, // icon
			3, // values: done
		},
	}

	flow := tui.New(tui.WithDriver(driver))
	result, err := flow.Run(context.Background(), session)
	assert.ErrorIs(t, err, editor.ErrInvalid)
	assert.False(t, result.Valid())
	assert.NotEmpty(t, driver.infos, "issues must be surfaced to the operator")

	pages, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pages, "invalid pages must not be persisted")
}
