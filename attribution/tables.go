package attribution

// Period is a coarse historical era of Latin.
type Period string

const (
	Classical Period = "Classical"
	Medieval  Period = "Medieval"
	Late      Period = "Late"
	Test      Period = "test"
)

// perseusAuthors maps Perseus document ids (the sent_id prefix up to the
// second dot) to authors. The ids follow the PerseusDL Latin treebank texts
// listed for UD_Latin-Perseus.
var perseusAuthors = map[string]string{
	"phi0448.phi001": "Caesar",
	"phi0474.phi013": "Cicero",
	"phi0620.phi001": "Propertius",
	"phi0631.phi001": "Sallust",
	"phi0690.phi003": "Vergil",
	"phi0959.phi006": "Ovid",
	"phi0972.phi001": "Petronius",
	"phi0975.phi001": "Phaerus",  // Phaedrus
	"phi1221.phi007": "Augustus", // Res Gestae
	"phi1348.abo012": "Suetonius",
	"phi1351.phi005": "Tacitus",
	"tlg0031.tlg027": "Jerome", // Vulgate
}

// proielAuthors maps the first word of PROIEL "source" metadata to authors.
// PROIEL holds the Vulgate New Testament, selections of the Gallic War,
// Cicero's letters and Palladius.
var proielAuthors = map[string]string{
	"Jerome's":    "Jerome",
	"De":          "Cicero",
	"Epistulae":   "Cicero",
	"Opus":        "Palladius",
	"Commentarii": "Caesar",
}

// authorPeriods is the AuthorPeriodTable: every author an attribution rule
// can produce has an entry.
var authorPeriods = map[string]Period{
	"Dante":      Medieval,
	"Jerome":     Classical,
	"Palladius":  Late,
	"Cicero":     Classical,
	"Caesar":     Classical,
	"Aquinas":    Medieval,
	"Late":       Late,
	"Phaerus":    Classical,
	"Augustus":   Classical,
	"Suetonius":  Classical,
	"Tacitus":    Classical,
	"Propertius": Classical,
	"Sallust":    Classical,
	"Vergil":     Classical,
	"Ovid":       Classical,
	"Petronius":  Classical,
	"test":       Test,
}
