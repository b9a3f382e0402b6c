package parser

// Pointer helpers for constraint fields (Maximum, MaxLength, MultipleOf, ...).

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
