package site

// The public site never shows empty sections: when a page carries no text
// for a field, the presentation substitutes the site's original placeholder
// copy. The copy is Indonesian because that is the language of the deployed
// site.

var homeFallbackText = map[string]string{
	"hero_title":      "Merajut Keberagaman, Menciptakan Dampak.",
	"hero_subtitle":   "Ruang kolaborasi yang menempatkan manusia sebagai pusat perjalanan. Bersama wujudkan masa depan yang inklusif.",
	"manifesto_quote": "Manusia sebagai pusat, keberagaman sebagai kekuatan. Melangkah bersama untuk dampak yang lebih luas.",
}

var aboutFallbackText = map[string]string{
	"hero_title":       "Menelusuri Jejak, Merawat Harapan.",
	"who_we_are":       "Titian Nusantara adalah simpul pergerakan yang berfokus pada kesejahteraan akar rumput. Kami hadir untuk memastikan bahwa laju perkembangan tidak meninggalkan mereka yang berada di tapal batas.",
	"why_us":           "Karena perubahan sejati tidak datang dari instruksi atas, melainkan dari tumbuhnya kesadaran dan kemandirian di tingkat paling dasar. Kami percaya pada kolaborasi yang setara.",
	"manifesto_intro":  "Komitmen kami terukir dalam langkah nyata, diarahkan oleh pandangan jauh ke depan dan dijalankan melalui dedikasi hari ini.",
	"vision":           "Mewujudkan tatanan masyarakat yang mandiri, inklusif, dan hidup selaras dengan alam serta akar budayanya.",
	"mission":          "Menjadi jembatan yang menghubungkan potensi lokal dengan peluang global, memberdayakan komunitas melalui pendidikan dan aksi nyata.",
	"timeline_summary": "Perjalanan kami bukanlah garis lurus, melainkan proses belajar tanpa henti dari setiap langkah yang kami jejakkan bersama masyarakat.",
}

func fallbackValues() []map[string]string {
	return []map[string]string{
		{"title": "Bermakna", "icon": "Heart", "description": "Solusi dari akar rumput."},
		{"title": "Adil", "icon": "Scale", "description": "Akses setara, meruntuhkan batas."},
		{"title": "Membumi", "icon": "Leaf", "description": "Menghargai kearifan lokal."},
		{"title": "Berkelanjutan", "icon": "Compass", "description": "Membangun ekosistem mandiri."},
	}
}

func fallbackTimeline() []map[string]string {
	return []map[string]string{
		{"year": "2020", "title": "Langkah Pertama", "description": "Titian Nusantara didirikan sebagai inisiatif kecil di desa terpencil."},
		{"year": "2022", "title": "Ekspansi Ekosistem", "description": "Membuka program pemberdayaan di 5 provinsi di Indonesia Timur."},
		{"year": "2024", "title": "Kolaborasi Global", "description": "Menjadi mitra resmi program pembangunan berkelanjutan internasional."},
	}
}
