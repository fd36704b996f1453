package records

import "strings"

// PredefinedKeywords returns the built-in keyword catalog: the carpentry,
// metalwork and lift trades this service watches for, plus the matching CPV
// procurement codes.
func PredefinedKeywords() []string {
	return []string{
		"miroiterie",
		"métallerie",
		"menuiserie extérieure",
		"Travaux de menuiserie et de charpenterie",
		"Pose de portes et de fenêtres et d'éléments accessoires",
		"Pose d'encadrements de portes et de fenêtres",
		"Pose d'encadrements de portes",
		"Pose d'encadrements de fenêtres",
		"Pose de seuils",
		"Poses de portes et de fenêtres",
		"Pose de portes",
		"Pose de fenêtres",
		"Pose de menuiseries métalliques, excepté portes et fenêtres",
		"Travaux de cloisonnement",
		"Installation de volets",
		"Travaux d'installation de stores",
		"Travaux d'installation de vélums",
		"Travaux d'installation de volets roulants",
		"Serrurerie",
		"Services de serrurerie",
		"Menuiserie pour la construction",
		"Travaux de menuiserie",
		"Clôtures",
		"Clôtures de protection",
		"Travaux d'installation de clôtures, de garde-corps et de dispositifs de sécurité",
		"Pose de clôtures",
		"Ascenseurs, skips, monte-charges, escaliers mécaniques et trottoirs roulants",
		"Escaliers mécaniques",
		"Pièces pour ascenseurs, skips ou escaliers mécaniques",
		"Pièces pour escaliers mécaniques",
		"Escaliers",
		"Escaliers pliants",
		"Travaux d'installation d'ascenseurs et d'escaliers mécaniques",
		"Travaux d'installation d'escaliers mécaniques",
		"Services de réparation et d'entretien d'escaliers mécaniques",
		"Services d'installation de matériel de levage et de manutention, excepté ascenseurs et escaliers mécaniques",
		"45420000", "45421100", "45421110", "45421111", "45421112", "45421120",
		"45421130", "45421131", "45421132", "45421140", "45421141", "45421142",
		"45421143", "45421144", "45421145", "44316500", "98395000", "44220000",
		"45421000", "34928200", "34928310", "45340000", "45342000", "42416000",
		"42416400", "42419500", "42419530", "44233000", "44423220", "45313000",
		"45313200", "50740000", "51511000",
	}
}

// CombineKeywords merges selected keywords with newline-separated custom
// entries, trimming whitespace and dropping blanks.
func CombineKeywords(selected []string, custom string) []string {
	out := make([]string, 0, len(selected))
	for _, kw := range selected {
		if k := strings.TrimSpace(kw); k != "" {
			out = append(out, k)
		}
	}
	for _, line := range strings.Split(custom, "\n") {
		if k := strings.TrimSpace(line); k != "" {
			out = append(out, k)
		}
	}
	return out
}
