package seed

import "strings"

// SlotTemplate is one donation slot in a liturgical template.
type SlotTemplate struct {
	Name   string
	Office string
}

func withOffice(office string, names ...string) []SlotTemplate {
	slots := make([]SlotTemplate, 0, len(names))
	for _, name := range names {
		slots = append(slots, SlotTemplate{Name: name, Office: office})
	}
	return slots
}

func shabbatTemplate() []SlotTemplate {
	return withOffice("Chaharit 1",
		"Ehal", "1er Sepher", "2eme Sepher", "3eme Sepher", "Agbaa",
		"1ere montee", "2eme montee", "3eme montee", "4eme montee",
		"5eme montee", "6eme montee", "7eme montee", "Maftir",
	)
}

func roshHashanaTemplate() []SlotTemplate {
	var slots []SlotTemplate
	slots = append(slots, withOffice("Chaharit 1",
		"Parnassa", "Ehal", "1er Sepher", "2eme Sepher", "Agbaa",
		"1ere montee", "2eme montee", "3eme montee", "4eme montee",
		"5eme montee", "6eme montee", "7eme montee", "Maftir", "Et shaarer Raxon",
	)...)
	slots = append(slots, withOffice("Arvit 1",
		"Parnassa", "Ehal", "1er Sepher", "Agbaa",
		"1ere montee", "2eme montee", "3eme montee",
	)...)
	slots = append(slots, withOffice("Chaharit 2",
		"Parnassa", "Ehal", "1er Sepher", "Agbaa",
		"1ere montee", "2eme montee", "3eme montee", "4eme montee",
		"5eme montee", "Maftir", "Et shaarer Raxon",
	)...)
	slots = append(slots, SlotTemplate{Name: "Parnassa", Office: "Minha"})
	return slots
}

func yomKippurTemplate() []SlotTemplate {
	var slots []SlotTemplate
	slots = append(slots, withOffice("Arvit 1",
		"Ehal", "1er Sepher (Kol Nidrei)", "2eme Sepher", "3eme Sepher",
		"4eme Sepher", "5eme Sepher", "6eme Sepher", "7eme Sepher",
		"8eme Sepher", "Parnassa",
	)...)
	slots = append(slots, withOffice("Arvit 1",
		"Rimonim", "Rimonim", "Rimonim", "Rimonim",
	)...)
	slots = append(slots, withOffice("Chaharit 1",
		"Ehal", "1er Sepher", "2eme Sepher", "Agbaa",
		"1er montee", "2eme montee", "3eme montee", "4eme montee",
		"5eme montee", "6eme montee", "7eme montee", "Maftir",
	)...)
	slots = append(slots,
		SlotTemplate{Name: "Seder Avoda", Office: "Chaharit 1"},
		SlotTemplate{Name: "Parnassa", Office: "Chaharit 1"},
	)
	slots = append(slots, withOffice("Minha",
		"Ehal", "1er Sepher", "Agbaa", "1ere montee", "2eme montee",
		"Maftir", "Et shaarer Raxon",
	)...)
	slots = append(slots, withOffice("Arvit 2",
		"Neila", "Hatan Torah", "Hatan Berechit", "Hatan Meona",
	)...)
	return slots
}

func simchatTorahTemplate() []SlotTemplate {
	sifrei := []string{
		"Ehal", "1er Sepher", "2eme Sepher", "3eme Sepher", "4eme Sepher",
		"5eme Sepher", "6eme Sepher", "7eme Sepher", "8eme Sepher", "9eme Sepher",
		"1ere Akafa", "2eme Akafa", "3eme Akafa", "4eme Akafa", "5eme Akafa",
		"6eme Akafa", "7eme Akafa",
	}
	var slots []SlotTemplate
	slots = append(slots, withOffice("Arvit 1", sifrei...)...)
	slots = append(slots, withOffice("Chaharit 1",
		"Ehal", "1er Sepher", "2eme Sepher", "3eme Sepher", "Agbaa",
		"1ere montee", "2eme montee", "3eme montee", "4eme montee",
		"5eme montee", "6eme montee", "7eme montee", "Maftir", "Tikoun Agechem",
	)...)
	slots = append(slots, withOffice("Arvit 2", sifrei...)...)
	return slots
}

// TemplateFor picks the slot template for a new event from its name and
// category. Events with no matching template start with no slots.
func TemplateFor(name, category string) []SlotTemplate {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "roch hachana"):
		return roshHashanaTemplate()
	case strings.Contains(lower, "yom kipour"):
		return yomKippurTemplate()
	case strings.Contains(lower, "simha torah"):
		return simchatTorahTemplate()
	case category == "SHABAT" || strings.HasPrefix(lower, "shabat"):
		return shabbatTemplate()
	default:
		return nil
	}
}
