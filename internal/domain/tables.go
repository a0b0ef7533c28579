package domain

var tables = map[Arity]*Table{
	Monad: newTable(Monad,
		"Represents unity in diversity and diversity in unity.",
		false,
		[]string{"Instance"},
		nil,
	),
	Dyad: newTable(Dyad,
		"Complimentarity, polarity or force",
		false,
		[]string{"Essence", "Existence"},
		nil,
	),
	Triad: newTable(Triad,
		"Dynamism or relatedness",
		false,
		[]string{"Active", "Passive", "Reconciling"},
		nil,
	),
	Tetrad: newTable(Tetrad,
		"A Field of Action",
		true,
		[]string{"Ground", "Ideal", "Instrumental", "Directive"},
		nil,
	),
	Pentad: newTable(Pentad,
		"Quintessence or significance",
		true,
		[]string{
			"Intrinsic Limit",
			"Inner Upper Limit",
			"Inner Lower Limit",
			"Outer Upper Limit",
			"Outer Lower Limit",
		},
		[]string{
			"Aspiration",            // A<>B
			"Operation",             // A<>C
			"Inspiration",           // A<>D
			"Quantitive match",      // A<>E
			"Range of potential",    // B<>C
			"Output",                // B<>D
			"Form",                  // B<>E
			"Range of significance", // C<>D
			"Input",                 // C<>E
			"Function",              // D<>E
		},
	),
	Hexad: newTable(Hexad,
		"Coalescence",
		true,
		[]string{"Resources", "Values", "Options", "Criteria", "Facts", "Priorities"},
		nil,
	),
	Heptad: newTable(Heptad,
		"Generative power",
		true,
		[]string{"Insight", "Research", "Design", "Synthesis", "Application", "Delivery", "Value"},
		nil,
	),
	Octad: newTable(Octad,
		"Completedness",
		true,
		[]string{
			"Smallest Significant Holon",
			"Critical Functions",
			"Supportive Platform",
			"Necessary Resourcing",
			"Integrative Totality",
			"Inherent Values",
			"Intrinsic Nature",
			"Organisational Modes",
		},
		nil,
	),
	Dodecad: newTable(Dodecad,
		"Totality",
		false,
		[]string{
			"Autocracy",
			"Domination",
			"Creativity",
			"Pattern",
			"Individuality",
			"Structure",
			"Repetition",
			"Potentiality",
			"Subsistence",
			"Relatedness",
			"Polarity",
			"Wholeness",
		},
		nil,
	),
}
