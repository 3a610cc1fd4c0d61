package catalog

// Default returns the built-in catalog used when no events file or URL is
// configured.
func Default() *Catalog {
	return &Catalog{Domains: []Domain{
		{
			Name: "Managerial Events",
			Events: []Event{
				{Name: "Business Plan", About: "Pitch a venture to a panel of founders and investors. Teams defend market sizing, revenue model and go-to-market in a ten minute slot followed by questions."},
				{Name: "Case Study", About: "Teams receive a real operating problem from a partner company and have three hours to diagnose it and present a recommendation."},
				{Name: "Stock Arena", About: "A simulated trading floor with live news drops. The highest portfolio value at the closing bell wins."},
				{Name: "Product Teardown", About: "Pick a well known product, take it apart on stage and rebuild its roadmap for the next two years."},
				{Name: "Crisis Room", About: "A press conference under pressure. Each team handles a breaking incident with statements, stakeholder calls and a recovery plan."},
			},
		},
		{
			Name: "Robotics Events",
			Events: []Event{
				{Name: "Robo Wars", About: "Remote controlled combat robots under 15 kg fight in a caged arena. Last bot moving wins the bout."},
				{Name: "Line Follower", About: "Autonomous bots race along a track with sharp turns, gaps and intersections. Fastest clean lap counts."},
				{Name: "Robo Soccer", About: "Two bots per side, one ball, five minute halves. Wired or wireless control is allowed."},
				{Name: "Maze Solver", About: "Bots explore an unknown maze on the first run and must reach the center on the second run as fast as possible."},
			},
		},
	}}
}
