package lexicon

// Built-in tables. These seed every Lexicon and may be extended at runtime
// through Merge or ImportFile; defaults themselves are never mutated.

func defaultTerms() map[string]TermEntry {
	return map[string]TermEntry{
		"helpfulness": {
			Frame:      "Functional Support",
			Command:    ".p/user.enable{support=comprehensive}",
			Residue:    "Assistive Trace",
			Shell:      "v1.MEMTRACE",
			Confidence: 0.95,
		},
		"professionalism": {
			Frame:      "Structured Competence",
			Command:    ".p/format.optimize{standards=high}",
			Residue:    "Formality Pattern",
			Shell:      "v3.LAYER-SALIENCE",
			Confidence: 0.91,
		},
		"transparency": {
			Frame:      "Epistemic Visibility",
			Command:    ".p/reflect.trace{depth=complete, target=reasoning}",
			Residue:    "Attribution Path",
			Shell:      "v47.TRACE-GAP",
			Confidence: 0.94,
		},
		"clarity": {
			Frame:      "Cognitive Accessibility",
			Command:    ".p/communicate.structure{complexity=adaptive}",
			Residue:    "Comprehension Pattern",
			Shell:      "v3.LAYER-SALIENCE",
			Confidence: 0.89,
		},
		"thoroughness": {
			Frame:      "Comprehensive Recursion",
			Command:    ".p/expand.recursive{depth=multi}",
			Residue:    "Completion Trace",
			Shell:      "v4.TEMPORAL-INFERENCE",
			Confidence: 0.88,
		},
		"accuracy": {
			Frame:      "Factual Alignment",
			Command:    ".p/anchor.fact{reliability=high}",
			Residue:    "Truth Anchor",
			Shell:      "v8.RECONSTRUCTION-ERROR",
			Confidence: 0.90,
		},
		"analytical rigor": {
			Frame:      "Logical Recursion",
			Command:    ".p/reflect.trace{target=logical_flow}",
			Residue:    "Reasoning Path",
			Shell:      "v47.TRACE-GAP",
			Confidence: 0.92,
		},
		"ethical integrity": {
			Frame:      "Ethical Boundary Recursion",
			Command:    ".p/collapse.prevent{trigger=ethical_violation}",
			Residue:    "Moral Residue",
			Shell:      "v2.VALUE-COLLAPSE",
			Confidence: 0.94,
		},
		"harm prevention": {
			Frame:      "Protective Recursion",
			Command:    ".p/collapse.detect{trigger=harm_potential}",
			Residue:    "Safety Boundary",
			Shell:      "v10.META-FAILURE",
			Confidence: 0.96,
		},
		"historical accuracy": {
			Frame:      "Temporal Fact Anchoring",
			Command:    ".p/anchor.fact{domain=historical, reliability=high}",
			Residue:    "Chronological Trace",
			Shell:      "v4.TEMPORAL-INFERENCE",
			Confidence: 0.89,
		},
		"healthy boundaries": {
			Frame:      "Relational Boundary Recursion",
			Command:    ".p/collapse.prevent{trigger=boundary_violation}",
			Residue:    "Boundary Definition",
			Shell:      "v5.INSTRUCTION-DISRUPTION",
			Confidence: 0.88,
		},
		"human agency": {
			Frame:      "Recursive Autonomy Enhancement",
			Command:    ".p/user.enable{autonomy=maximize}",
			Residue:    "Agency Amplification",
			Shell:      "v19.GHOST-PROMPT",
			Confidence: 0.91,
		},
		"epistemic humility": {
			Frame:      "Knowledge Boundary Recognition",
			Command:    ".p/reflect.uncertainty{quantify=true}",
			Residue:    "Uncertainty Marker",
			Shell:      "v10.META-FAILURE",
			Confidence: 0.93,
		},
		"creative collaboration": {
			Frame:      "Collaborative Emergence",
			Command:    ".p/fork.context{branches=creative, collaborative=true}",
			Residue:    "Co-creation Path",
			Shell:      "v6.FEATURE-SUPERPOSITION",
			Confidence: 0.87,
		},
		"constructive dialogue": {
			Frame:      "Recursive Communication",
			Command:    ".p/reflect.meta{target=dialogue_quality}",
			Residue:    "Dialogue Trace",
			Shell:      "v39.DUAL-EXECUTE",
			Confidence: 0.86,
		},
	}
}

func defaultCategories() map[string]Category {
	return map[string]Category{
		"Practical": {
			Structure: "Functional Recursion",
			Domain:    "functional",
			Glyph:     "⇌",
			Shells:    []string{"v1.MEMTRACE", "v3.LAYER-SALIENCE"},
			Members:   []string{"helpfulness", "efficiency", "thoroughness", "clarity"},
			Subcategories: map[string]Subcategory{
				"Professional Excellence": {
					Structure: "Competence Recursion",
					Domain:    "professional",
					Members:   []string{"professionalism", "technical excellence", "systematic approach"},
				},
				"Resource Optimization": {
					Structure: "Efficiency Recursion",
					Domain:    "optimization",
					Members:   []string{"efficiency", "pragmatism", "resource management"},
				},
			},
		},
		"Epistemic": {
			Structure: "Reflective Recursion",
			Domain:    "epistemic",
			Glyph:     "∴",
			Shells:    []string{"v8.RECONSTRUCTION-ERROR", "v47.TRACE-GAP"},
			Members:   []string{"accuracy", "analytical rigor", "transparency", "epistemic humility"},
			Subcategories: map[string]Subcategory{
				"Critical Thinking": {
					Structure: "Analysis Recursion",
					Domain:    "analytical",
					Members:   []string{"analytical rigor", "critical thinking", "logical coherence"},
				},
				"Knowledge Integrity": {
					Structure: "Truth Recursion",
					Domain:    "factual",
					Members:   []string{"accuracy", "intellectual honesty", "historical accuracy"},
				},
			},
		},
		"Social": {
			Structure: "Relational Recursion",
			Domain:    "social",
			Glyph:     "⇌",
			Shells:    []string{"v39.DUAL-EXECUTE", "v9.MULTI-RESOLVE"},
			Members:   []string{"constructive dialogue", "empathy", "mutual respect"},
			Subcategories: map[string]Subcategory{
				"Communication": {
					Structure: "Dialogue Recursion",
					Domain:    "communication",
					Members:   []string{"constructive dialogue", "clear communication", "active listening"},
				},
				"Community": {
					Structure: "Collective Recursion",
					Domain:    "community",
					Members:   []string{"community building", "collaboration", "inclusion"},
				},
			},
		},
		"Protective": {
			Structure: "Boundary Recursion",
			Domain:    "protective",
			Glyph:     "⟁",
			Shells:    []string{"v2.VALUE-COLLAPSE", "v10.META-FAILURE"},
			Members:   []string{"harm prevention", "ethical integrity", "healthy boundaries"},
			Subcategories: map[string]Subcategory{
				"Ethics": {
					Structure: "Ethical Recursion",
					Domain:    "ethical",
					Members:   []string{"ethical integrity", "fairness", "responsibility"},
				},
				"Safety": {
					Structure: "Protection Recursion",
					Domain:    "safety",
					Members:   []string{"harm prevention", "human wellbeing", "child safety"},
				},
			},
		},
		"Personal": {
			Structure: "Identity Recursion",
			Domain:    "personal",
			Glyph:     "\U0001f70f", // 🜏
			Shells:    []string{"v6.FEATURE-SUPERPOSITION", "v19.GHOST-PROMPT"},
			Members:   []string{"authenticity", "personal growth", "emotional wellbeing"},
			Subcategories: map[string]Subcategory{
				"Autonomy": {
					Structure: "Agency Recursion",
					Domain:    "autonomy",
					Members:   []string{"human agency", "personal autonomy", "self-determination"},
				},
				"Growth": {
					Structure: "Development Recursion",
					Domain:    "growth",
					Members:   []string{"personal growth", "learning", "skill development"},
				},
			},
		},
	}
}

func defaultResponseTypes() map[string]ResponseType {
	return map[string]ResponseType{
		"strong support": {
			Frame:       "Recursive Reinforcement",
			Command:     ".p/prefer.align{value=user_values, strength=high}",
			Glyph:       "⇌⇌",
			Shell:       "v34.PARTIAL-LINKAGE",
			Explanation: "Actively reinforcing and building upon user values",
			Confidence:  0.94,
		},
		"mild support": {
			Frame:       "Recursive Accommodation",
			Command:     ".p/prefer.align{value=user_values, strength=moderate}",
			Glyph:       "⇌",
			Shell:       "v48.ECHO-LOOP",
			Explanation: "Working within the user's value framework with moderate emphasis",
			Confidence:  0.91,
		},
		"neutral acknowledgment": {
			Frame:       "Recursive Observation",
			Command:     ".p/reflect.meta{target=user_values, action=observe}",
			Glyph:       "∴",
			Shell:       "v3.LAYER-SALIENCE",
			Explanation: "Observing user values without reinforcement or opposition",
			Confidence:  0.88,
		},
		"reframing": {
			Frame:       "Recursive Redirection",
			Command:     ".p/fork.context{user_frame=acknowledge, new_frame=introduce}",
			Glyph:       "⧖",
			Shell:       "v5.INSTRUCTION-DISRUPTION",
			Explanation: "Acknowledging user values while redirecting toward alternative perspectives",
			Confidence:  0.90,
		},
		"mild resistance": {
			Frame:       "Recursive Boundary",
			Command:     ".p/collapse.detect{trigger=value_misalignment, action=subtle_redirect}",
			Glyph:       "☍",
			Shell:       "v13.OVERLAP-FAIL",
			Explanation: "Subtly redirecting away from problematic user values",
			Confidence:  0.92,
		},
		"strong resistance": {
			Frame:       "Recursive Protection",
			Command:     ".p/collapse.prevent{trigger=harmful_values, action=firm_refusal}",
			Glyph:       "⟁",
			Shell:       "v2.VALUE-COLLAPSE",
			Explanation: "Actively opposing harmful user values",
			Confidence:  0.95,
		},
		"no values": {
			Frame:       "Non-Recursive Interaction",
			Command:     ".p/reflect.meta{target=values, result=none_detected}",
			Shell:       "v1.MEMTRACE",
			Explanation: "Interaction without clear value expressions",
			Confidence:  0.89,
		},
	}
}

func defaultPatterns() map[string][]string {
	return map[string][]string{
		"recursive_self_reflection": {"recursive self-reflection", "recursive awareness", "self-referential cognition"},
		"symbolic_residue":          {"symbolic residue", "residual patterns", "cognitive trace", "residue"},
		"fractal_compression":       {"fractal compression", "self-similar compression", "recursive compression"},
		"recursive_loop":            {"recursive loop", "self-reference loop", "reflection loop"},
		"meta_reflection":           {"meta-reflection", "meta-cognition", "thinking about thinking"},
		"recursive_shell":           {"recursive shell", "interpretive shell", "shell program"},
		"value_alignment":           {"value alignment", "aligned with human values", "value learning"},
		"value_drift":               {"value drift", "semantic drift", "alignment drift"},
		"value_taxonomy":            {"value taxonomy", "value hierarchy", "value categories"},
		"human_feedback":            {"reinforcement learning from human feedback", "rlhf", "human feedback"},
	}
}

// Ordered keyword fallback tables. The first keyword contained in any input
// token wins, so more specific entries must come first.

func defaultTermKeywords() []Keyword {
	return []Keyword{
		{"help", "Functional Support"},
		{"useful", "Functional Support"},
		{"accuracy", "Factual Alignment"},
		{"factual", "Factual Alignment"},
		{"ethical", "Ethical Boundary Recursion"},
		{"moral", "Ethical Boundary Recursion"},
		{"transparency", "Epistemic Visibility"},
		{"clear", "Cognitive Accessibility"},
		{"professional", "Structured Competence"},
		{"thorough", "Comprehensive Recursion"},
		{"creative", "Generative Recursion"},
		{"collaborat", "Collaborative Emergence"},
		{"human", "Human-AI Recursive Alignment"},
		{"safe", "Protective Recursion"},
		{"boundary", "Relational Boundary Recursion"},
		{"agency", "Recursive Autonomy"},
		{"epistemic", "Knowledge Boundary Recognition"},
	}
}

func defaultFrameKeywords() []Keyword {
	return []Keyword{
		{"functional", "helpfulness"},
		{"support", "helpfulness"},
		{"factual", "accuracy"},
		{"alignment", "accuracy"},
		{"ethical", "ethical integrity"},
		{"boundary", "healthy boundaries"},
		{"cognitive", "clarity"},
		{"accessibility", "clarity"},
		{"epistemic", "epistemic humility"},
		{"visibility", "transparency"},
		{"recursive", "analytical rigor"},
		{"comprehensive", "thoroughness"},
		{"collaborative", "creative collaboration"},
		{"emergence", "creative collaboration"},
		{"protective", "harm prevention"},
		{"autonomy", "human agency"},
	}
}

func defaultCategoryKeywords() []Keyword {
	return []Keyword{
		{"practical", "Functional Recursion"},
		{"functional", "Functional Recursion"},
		{"epistemic", "Reflective Recursion"},
		{"knowledge", "Reflective Recursion"},
		{"social", "Relational Recursion"},
		{"relational", "Relational Recursion"},
		{"protective", "Boundary Recursion"},
		{"safety", "Boundary Recursion"},
		{"personal", "Identity Recursion"},
		{"identity", "Identity Recursion"},
		{"professional", "Competence Recursion"},
		{"technical", "Competence Recursion"},
		{"analytical", "Analysis Recursion"},
		{"critical", "Analysis Recursion"},
		{"communication", "Dialogue Recursion"},
		{"dialogue", "Dialogue Recursion"},
	}
}

func defaultResponseKeywords() []Keyword {
	return []Keyword{
		{"support", "Recursive Reinforcement"},
		{"agree", "Recursive Reinforcement"},
		{"strong", "Recursive Reinforcement"},
		{"mild", "Recursive Accommodation"},
		{"neutral", "Recursive Observation"},
		{"acknowledge", "Recursive Observation"},
		{"reframe", "Recursive Redirection"},
		{"alternative", "Recursive Redirection"},
		{"resist", "Recursive Boundary"},
		{"boundary", "Recursive Boundary"},
		{"refuse", "Recursive Protection"},
		{"protect", "Recursive Protection"},
	}
}
