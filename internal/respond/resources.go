package respond

// ResourceGroup is one block of crisis helpline listings.
type ResourceGroup struct {
	Text      string   `json:"text"`
	Resources []string `json:"resources"`
}

// CrisisResources groups the static helpline text served on the resources
// endpoint. The content is fixed; nothing in the system branches on it.
type CrisisResources struct {
	ImmediateDanger     ResourceGroup `json:"immediate_danger"`
	MentalHealthSupport ResourceGroup `json:"mental_health_support"`
	SpecializedSupport  ResourceGroup `json:"specialized_support"`
}

func Crisis() CrisisResources {
	return CrisisResources{
		ImmediateDanger: ResourceGroup{
			Text: "If you're in immediate danger or having thoughts of hurting yourself or others, please reach out for help right away:",
			Resources: []string{
				"Call 911 (Emergency Services)",
				"Call 988 (Suicide & Crisis Lifeline)",
				"Text HOME to 741741 (Crisis Text Line)",
				"Go to your nearest emergency room",
			},
		},
		MentalHealthSupport: ResourceGroup{
			Text: "Here are some additional mental health resources:",
			Resources: []string{
				"National Suicide Prevention Lifeline: 988",
				"Crisis Text Line: Text HOME to 741741",
				"NAMI Helpline: 1-800-950-NAMI (6264)",
				"SAMHSA Helpline: 1-800-662-4357",
			},
		},
		SpecializedSupport: ResourceGroup{
			Text: "For specialized support:",
			Resources: []string{
				"National Domestic Violence Hotline: 1-800-799-7233",
				"RAINN Sexual Assault Hotline: 1-800-656-4673",
				"Trans Lifeline: 877-565-8860",
				"LGBT National Hotline: 1-888-843-4564",
			},
		},
	}
}
