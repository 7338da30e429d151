package seeds

// Defaults is the launch catalog: the skills the landing pages target and a
// location set spanning the high/mid/low rate tiers, plus the remote
// sentinel.
func Defaults() Fixtures {
	return Fixtures{
		Skills: []SkillFixture{
			{Name: "React", Category: "Development", Aliases: []string{"ReactJS", "React.js"}},
			{Name: "Node.js", Category: "Development", Aliases: []string{"NodeJS", "Node"}},
			{Name: "Python", Category: "Development", Aliases: []string{"Python3"}},
			{Name: "DevOps", Category: "Infrastructure", Aliases: []string{"SRE", "Platform Engineering"}},
			{Name: "UI/UX Design", Category: "Design", Aliases: []string{"UX Design", "UI Design", "Product Design"}},
		},
		Locations: []LocationFixture{
			{City: "Remote"},
			{City: "San Francisco", Country: "USA"},
			{City: "New York", Country: "USA"},
			{City: "London", Country: "UK"},
			{City: "Berlin", Country: "Germany"},
			{City: "Toronto", Country: "Canada"},
			{City: "Bangalore", Country: "India"},
			{City: "Lagos", Country: "Nigeria"},
			{City: "Manila", Country: "Philippines"},
		},
	}
}
