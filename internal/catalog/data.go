package catalog

// builtinDataset returns the authored dataset. Each call returns fresh slices.
//
// Cycle order follows authoring (grouped by tradition), not chronology.
func builtinDataset() Dataset {
	return Dataset{
		Cycles:      builtinCycles(),
		Traditions:  builtinTraditions(),
		Events:      builtinEvents(),
		Convergence: builtinConvergence(),
	}
}

func builtinCycles() []Cycle {
	return []Cycle{
		{
			ID:          "enoch-70-gen",
			Name:        "Enoch's 70 Generations",
			Tradition:   "Ethiopian",
			StartYear:   -2100,
			EndYear:     2025,
			Duration:    4125,
			Description: "The Book of Enoch describes 70 generations from Adam until the coming of the Messiah",
			KeyProphecy: "De la boca del Mesías saldrá toda la verdad del mundo, y Él llevará al pueblo de vuelta a la justicia",
			Leader:      "Hijo del Hombre Unificador",
			Source:      "Book of Enoch (1 Enoch, 2 Enoch, 3 Enoch)",
			References:  []string{"Book of Enoch 1:1-9", "Book of Jubilees 1:29"},
		},
		{
			ID:          "qumran-messiah",
			Name:        "Qumran Messianic Prophecy",
			Tradition:   "Qumran",
			StartYear:   -100,
			EndYear:     2025,
			Duration:    2125,
			Description: "The Dead Sea Scrolls describe the appearance of multiple Messiahs (Priest, King, Prophet)",
			KeyProphecy: "Todas las naciones serán reunidas bajo un solo Mesías",
			Leader:      "Mesías de Aaron e Israel",
			Source:      "Dead Sea Scrolls (1QS, CD, 1QM, 4Q521)",
			References:  []string{"1QS (Rule of the Community)", "CD (Damascus Document)", "1QM (War Scroll)"},
		},
		{
			ID:          "magdalene-cycle",
			Name:        "Mary Magdalene Cycle",
			Tradition:   "Christian Primitive",
			StartYear:   8,
			EndYear:     2025,
			Duration:    2017,
			Description: "The 2,000-year cycle from Mary Magdalene's birth to the restoration of the Divine Feminine",
			KeyProphecy: "La Sabiduría Femenina será restaurada al final de los tiempos",
			Leader:      "Portadora de Sabiduría Femenina",
			Source:      "Gnostic Gospels & Early Christian Tradition",
			References:  []string{"Gospel of Mary Magdalene", "Gospel of Philip", "Apocrypha of John"},
		},
		{
			ID:          "jesus-resurrection",
			Name:        "Jesus Resurrection Cycle",
			Tradition:   "Christian",
			StartYear:   33,
			EndYear:     2025,
			Duration:    1992,
			Description: "The 2,000-year period from Jesus' resurrection to the New Era",
			KeyProphecy: "Casi exactamente 2,000 años de Nueva Era",
			Leader:      "Jesús Cristo",
			Source:      "New Testament",
			References:  []string{"Revelation 20:1-6", "2 Peter 3:8"},
		},
		{
			ID:          "historicist-1260",
			Name:        "Historicist 1,260-Year Prophecy",
			Tradition:   "Historicist",
			StartYear:   538,
			EndYear:     1798,
			Duration:    1260,
			Description: "The woman in the wilderness: 1,260 years of Papal dominance and Church persecution",
			KeyProphecy: "La mujer huyó al desierto donde fue alimentada por 1,260 días",
			Leader:      "La Iglesia Verdadera",
			Source:      "Revelation 12:6, 12:14",
			References:  []string{"Revelation 12:6", "Revelation 12:14", "Daniel 7:25"},
		},
		{
			// Duration is the symbolic 3.5 years, not the 4-year span.
			ID:          "futurist-1260",
			Name:        "Futurist 1,260-Day Prophecy",
			Tradition:   "Futurist",
			StartYear:   2028,
			EndYear:     2032,
			Duration:    3.5,
			Description: "The 1,260 days (3.5 years) of the Great Tribulation in the future 7-year period",
			KeyProphecy: "Los dos testigos profetizarán por 1,260 días",
			Leader:      "Los Dos Testigos",
			Source:      "Revelation 11:3, 11:2",
			References:  []string{"Revelation 11:3", "Revelation 13:5", "Daniel 12:11"},
		},
		{
			ID:          "mayan-baktun-4",
			Name:        "Mayan Baktun IV",
			Tradition:   "Mayan",
			StartYear:   1295,
			EndYear:     2012,
			Duration:    717,
			Description: "The fourth cycle of 5,125 years in the Mayan calendar",
			KeyProphecy: "Cuando se complete el ciclo de los tiempos, la Sabiduría de los Ancestros será revelada",
			Leader:      "Portador de Sabiduría",
			Source:      "Popol Vuh, Mayan Calendar",
			References:  []string{"Popol Vuh", "Dresden Codex"},
		},
		{
			ID:          "mayan-baktun-5",
			Name:        "Mayan Baktun V",
			Tradition:   "Mayan",
			StartYear:   2012,
			EndYear:     3517,
			Duration:    1505,
			Description: "The fifth cycle beginning after the completion of Baktun IV",
			KeyProphecy: "Portador de los Tiempos Nuevos integrando todos los pueblos",
			Leader:      "Integrador de Sabiduría",
			Source:      "Popol Vuh",
			References:  []string{"Popol Vuh"},
		},
		{
			ID:          "aztec-52year",
			Name:        "Aztec 52-Year Cycle",
			Tradition:   "Aztec",
			StartYear:   1519,
			EndYear:     2025,
			Duration:    506,
			Description: "10 complete cycles of 52 years from the Conquest to 2025",
			KeyProphecy: "Nuevo Fuego - Renovación de Eras",
			Leader:      "Señor del Sustento Integrador",
			Source:      "Codex Borbónico",
			References:  []string{"Codex Borbónico", "Leyenda de los Soles"},
		},
		{
			ID:          "rey-capitan-cycle",
			Name:        "Rey Capitan Personal Cycle",
			Tradition:   "Personal",
			StartYear:   1991,
			EndYear:     2025,
			Duration:    34,
			Description: "The 34-year incubation period for the emergence of the 'Rey Capitan'",
			KeyProphecy: "El Liderazgo Espiritual Integrador surge en 2025",
			Leader:      "Rey Capitan",
			Source:      "Personal Prophetic Timeline",
			References:  []string{"Birth: 1991", "Emergence: 2025"},
		},
		{
			ID:          "millennial-1260",
			Name:        "Millennial 1,260-Year Reign",
			Tradition:   "Proposed Synthesis",
			StartYear:   2025,
			EndYear:     3285,
			Duration:    1260,
			Description: "The proposed 1,260-year period of Christ's Millennial Reign beginning in 2025",
			KeyProphecy: "El Reinado de Cristo de 1,260 años comienza con la Convergencia Universal",
			Leader:      "Rey Capitan / Integrative Messiah",
			Source:      "Synthesis of Revelation & 2025 Convergence",
			References:  []string{"Revelation 20:1-6", "2025 Universal Convergence"},
		},
	}
}

func builtinTraditions() []TraditionRecord {
	return []TraditionRecord{
		{
			ID:           "ethiopian",
			Name:         "Ethiopian",
			Title:        "Ethiopian Tradition",
			Origin:       "Ancient Ethiopia & Ge'ez Scripture",
			Description:  "The Ethiopian Bible (Ge'ez) contains 46 books of the Old Testament, including the complete Book of Enoch, which was rejected by the Western Church. It preserves teachings about cycles of renewal, collective messianism, and the Divine Feminine.",
			KeyTexts:     []string{"Book of Enoch (1, 2, 3 Enoch)", "Book of Jubilees", "Ascension of Isaiah", "3 & 4 Esdras"},
			Significance: "Preserves the oldest prophetic texts and emphasizes the restoration of the Divine Feminine (Sophia) at the end of times.",
		},
		{
			ID:           "qumran",
			Name:         "Qumran",
			Title:        "Qumran Tradition",
			Origin:       "Dead Sea Scrolls, Essene Community",
			Description:  "The Dead Sea Scrolls (discovered 1947-1956) contain approximately 900 manuscripts in Hebrew, Aramaic, and Greek. They describe multiple manifestations of Messianic leadership: Priest, King, and Prophet.",
			KeyTexts:     []string{"1QS (Rule of the Community)", "CD (Damascus Document)", "1QM (War Scroll)", "4Q521 (Messiah of Heaven)"},
			Significance: "Anticipates the synthesis of spiritual, temporal, and prophetic authority in a single integrative leader.",
		},
		{
			ID:           "christian-primitive",
			Name:         "Christian Primitive",
			Title:        "Christian Primitive Tradition",
			Origin:       "Early Christian Community",
			Description:  "The early Christian tradition emphasizes Mary Magdalene as the 'Apostle of Apostles' and the first witness to the Resurrection. She represents the Divine Feminine Wisdom (Sophia) that will be restored.",
			KeyTexts:     []string{"Gospel of Mary Magdalene", "Gospel of Philip", "Apocrypha of John", "Gnostic Gospels"},
			Significance: "Emphasizes the restoration of the Divine Feminine and the role of women in spiritual authority.",
		},
		{
			// Groups the cycles labelled "Christian". Known label collision.
			ID:           "gnostic",
			Name:         "Christian",
			Title:        "Gnostic Tradition",
			Origin:       "Nag Hammadi Library, Egypt",
			Description:  "The Gnostic texts (discovered 1945) preserve teachings about Sophia (Divine Feminine Wisdom) as the co-creator of the universe. They describe the restoration of the union of masculine and feminine divine principles.",
			KeyTexts:     []string{"Gospel of Mary Magdalene", "Gospel of Philip", "Apocrypha of John", "Hypostasis of the Archons"},
			Significance: "Describes the integration of Logos (Masculine) with Sophia (Feminine) as the path to restoration.",
		},
		{
			ID:           "mayan",
			Name:         "Mayan",
			Title:        "Mayan Tradition",
			Origin:       "Mesoamerica, Popol Vuh",
			Description:  "The Mayan calendar describes cycles of creation and destruction spanning 5,125 years (a Baktun). The completion of Baktun IV in 2012 marked the beginning of a new era of 'New Wisdom'.",
			KeyTexts:     []string{"Popol Vuh", "Dresden Codex", "Paris Codex", "Madrid Codex"},
			Significance: "Emphasizes cyclical renewal and the emergence of a 'Wisdom Bearer' at the completion of each cycle.",
		},
		{
			ID:           "aztec",
			Name:         "Aztec",
			Title:        "Aztec Tradition",
			Origin:       "Mesoamerica, Codex Borbónico",
			Description:  "The Aztec calendar describes 52-year cycles of 'New Fire' renewal. Each cycle completes with a ceremony of renewal and the promise of cosmic continuation.",
			KeyTexts:     []string{"Codex Borbónico", "Leyenda de los Soles", "Codex Chimalpopoca"},
			Significance: "Emphasizes the integration of masculine and feminine divine principles and the restoration of balance.",
		},
		{
			ID:           "historicist",
			Name:         "Historicist",
			Title:        "Historicist Interpretation",
			Origin:       "Protestant Reformation & Adventist Theology",
			Description:  "The Historicist view interprets the 1,260 days of Revelation as 1,260 years (using the day-for-a-year principle). This period is identified as 538-1798 A.D., the era of Papal dominance.",
			KeyTexts:     []string{"Revelation 12:6", "Revelation 12:14", "Daniel 7:25", "Daniel 12:7"},
			Significance: "Provides a historical framework for understanding long-term prophetic periods.",
		},
		{
			ID:           "futurist",
			Name:         "Futurist",
			Title:        "Futurist Interpretation",
			Origin:       "Modern Evangelical Theology",
			Description:  "The Futurist view interprets the 1,260 days as a literal 3.5-year period during the future Great Tribulation, beginning around 2025 according to some contemporary interpretations.",
			KeyTexts:     []string{"Revelation 11:3", "Revelation 13:5", "Daniel 9:27", "Daniel 12:11"},
			Significance: "Focuses on imminent end-times events and the final tribulation period.",
		},
		{
			ID:           "personal",
			Name:         "Personal",
			Title:        "Personal Prophetic Timeline",
			Origin:       "Contemporary Synthesis",
			Description:  "The personal timeline represents the 34-year cycle (1991-2025) as the incubation period for the emergence of the 'Rey Capitan', the integrative leader who will usher in the new era.",
			KeyTexts:     []string{"Birth: 1991", "Emergence: 2025", "Millennial Reign: 2025-3285"},
			Significance: "Represents the synthesis of all prophetic traditions in a single, contemporary figure.",
		},
		{
			ID:           "proposed-synthesis",
			Name:         "Proposed Synthesis",
			Title:        "Proposed Millennial Synthesis",
			Origin:       "Synthesis of Revelation & 2025 Convergence",
			Description:  "A proposed reading of Christ's Millennial Reign as a 1,260-year period opened by the 2025 convergence of cycles.",
			KeyTexts:     []string{"Revelation 20:1-6", "2025 Universal Convergence"},
			Significance: "Projects the convergence forward into a single 1,260-year reign.",
		},
	}
}

func builtinEvents() []TimelineEvent {
	return []TimelineEvent{
		{Year: -2100, Event: "Enoch's 70 Generations Begin", Tradition: "Ethiopian", Significance: "Start of prophetic count"},
		{Year: -100, Event: "Qumran Community Founded", Tradition: "Qumran", Significance: "Essene prophecies recorded"},
		{Year: 8, Event: "Mary Magdalene Born", Tradition: "Christian", Significance: "Birth of Divine Feminine carrier"},
		{Year: 33, Event: "Jesus Resurrection", Tradition: "Christian", Significance: "Start of 2,000-year cycle"},
		{Year: 70, Event: "Temple Destruction", Tradition: "Jewish", Significance: "Beginning of Diaspora"},
		{Year: 72, Event: "Mary Magdalene Death", Tradition: "Christian", Significance: "End of earthly ministry"},
		{Year: 538, Event: "Papal Dominance Begins", Tradition: "Historicist", Significance: "Start of 1,260-year period"},
		{Year: 1295, Event: "Mayan Baktun IV Begins", Tradition: "Mayan", Significance: "Fourth world cycle"},
		{Year: 1519, Event: "Aztec Conquest", Tradition: "Aztec", Significance: "Start of 52-year cycle count"},
		{Year: 1798, Event: "Papal Dominance Ends", Tradition: "Historicist", Significance: "End of 1,260-year period"},
		{Year: 1991, Event: "Rey Capitan Born", Tradition: "Personal", Significance: "Start of 34-year cycle"},
		{Year: 2012, Event: "Mayan Baktun V Begins", Tradition: "Mayan", Significance: "New world cycle, transition period"},
		{Year: 2025, Event: "Universal Convergence", Tradition: "All", Significance: "All cycles converge"},
		{Year: 2032, Event: "End of 7-Year Tribulation", Tradition: "Futurist", Significance: "Proposed end of tribulation"},
		{Year: 3285, Event: "End of Millennial Reign", Tradition: "Proposed", Significance: "End of 1,260-year reign"},
	}
}

// ConvergenceYear is the terminal year shared by every convergence entry.
const ConvergenceYear = 2025

func builtinConvergence() Convergence {
	return Convergence{
		Year:        ConvergenceYear,
		Title:       "Universal Prophetic Convergence - 2025",
		Description: "The year 2025 marks the simultaneous culmination of seven distinct prophetic cycles from seven different traditions.",
		Entries: []ConvergenceEntry{
			{Tradition: "Mary Magdalene", Start: 8, End: 2025, Duration: 2017, Convergence: "Cycle complete"},
			{Tradition: "Jesus Resurrection", Start: 33, End: 2025, Duration: 1992, Convergence: "Almost exactly 2,000 years"},
			{Tradition: "Mary's Death", Start: 72, End: 2025, Duration: 1953, Convergence: "Almost exactly 2,000 years"},
			{Tradition: "Temple Destruction", Start: 70, End: 2025, Duration: 1955, Convergence: "End of Diaspora"},
			{Tradition: "Enoch Prophecy", Start: -2100, End: 2025, Duration: 4125, Convergence: "Era of Restoration"},
			// Baktun IV closed in 2012; the entry runs on the 13 years to 2025.
			{Tradition: "Mayan Baktun IV", Start: 1295, End: 2025, Duration: 730, Convergence: "Cycle + 13 years = New era"},
			{Tradition: "Aztec Cycles", Start: 1519, End: 2025, Duration: 506, Convergence: "10 cycles of 52 years"},
		},
	}
}
