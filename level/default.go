package level

// Default returns the built-in four level ladder.
func Default() Ladder {
	return Ladder{
		{
			ID:                          1,
			Name:                        "Beginner",
			Description:                 "Short sessions with frequent rest periods",
			StrokeSeconds:               120,
			RestSeconds:                 60,
			ArousalCheckIntervalSeconds: 60,
			Requirements: Requirements{
				MinSessions:     3,
				MinTotalMinutes: 30,
				MinEdges:        5,
				MinClimaxRate:   0,
			},
		},
		{
			ID:                          2,
			Name:                        "Intermediate",
			Description:                 "Moderate sessions with balanced rest",
			StrokeSeconds:               300,
			RestSeconds:                 45,
			ArousalCheckIntervalSeconds: 45,
			Requirements: Requirements{
				MinSessions:     5,
				MinTotalMinutes: 60,
				MinEdges:        10,
				MinClimaxRate:   60,
			},
		},
		{
			ID:                          3,
			Name:                        "Advanced",
			Description:                 "Longer sessions with shorter rest",
			StrokeSeconds:               600,
			RestSeconds:                 30,
			ArousalCheckIntervalSeconds: 30,
			Requirements: Requirements{
				MinSessions:     10,
				MinTotalMinutes: 120,
				MinEdges:        20,
				MinClimaxRate:   70,
			},
		},
		{
			ID:                          4,
			Name:                        "Expert",
			Description:                 "Extended edge training",
			StrokeSeconds:               900,
			RestSeconds:                 20,
			ArousalCheckIntervalSeconds: 30,
			Requirements: Requirements{
				MinSessions:     15,
				MinTotalMinutes: 180,
				MinEdges:        30,
				MinClimaxRate:   80,
			},
		},
	}
}
