package talents

// allTalents is the static 34-item strengths inventory. Ids are stable and
// referenced by the personality profile synergy tiers; never renumber.
var allTalents = []Talent{
	{ID: 1, Name: "Achiever", Description: "Works with stamina and takes satisfaction from being productive every day.", Categories: []Category{CategoryExecution}},
	{ID: 2, Name: "Activator", Description: "Turns thoughts into action and gets impatient to start.", Categories: []Category{CategoryLeadership, CategoryExecution}},
	{ID: 3, Name: "Adaptability", Description: "Goes with the flow and takes things as they come.", Categories: []Category{CategoryTeamOriented}},
	{ID: 4, Name: "Analytical", Description: "Searches for reasons and causes, and thinks about all factors that might affect a situation.", Categories: []Category{CategoryAnalytical}},
	{ID: 5, Name: "Arranger", Description: "Organizes people and resources for maximum productivity.", Categories: []Category{CategoryExecution, CategoryTeamOriented}},
	{ID: 6, Name: "Belief", Description: "Holds core values that give life meaning and direction.", Categories: []Category{CategoryExecution}},
	{ID: 7, Name: "Command", Description: "Takes control of a situation and makes decisions.", Categories: []Category{CategoryLeadership}},
	{ID: 8, Name: "Communication", Description: "Puts thoughts into words and brings ideas to life for others.", Categories: []Category{CategoryLeadership, CategoryTeamOriented}},
	{ID: 9, Name: "Competition", Description: "Measures progress against others and strives to win.", Categories: []Category{CategoryLeadership}},
	{ID: 10, Name: "Connectedness", Description: "Believes events are linked and looks for the bigger picture in every group.", Categories: []Category{CategoryTeamOriented}},
	{ID: 11, Name: "Consistency", Description: "Treats people the same by setting clear rules and applying them evenly.", Categories: []Category{CategoryExecution}},
	{ID: 12, Name: "Context", Description: "Understands the present by researching its history.", Categories: []Category{CategoryAnalytical}},
	{ID: 13, Name: "Deliberative", Description: "Takes serious care in making decisions and anticipates obstacles.", Categories: []Category{CategoryExecution, CategoryAnalytical}},
	{ID: 14, Name: "Developer", Description: "Recognizes and cultivates the potential in others.", Categories: []Category{CategoryTeamOriented}},
	{ID: 15, Name: "Discipline", Description: "Enjoys routine and structure, and creates order.", Categories: []Category{CategoryExecution}},
	{ID: 16, Name: "Empathy", Description: "Senses other people's feelings by imagining their situations.", Categories: []Category{CategoryTeamOriented}},
	{ID: 17, Name: "Focus", Description: "Sets a direction, follows through, and corrects course when needed.", Categories: []Category{CategoryExecution}},
	{ID: 18, Name: "Futuristic", Description: "Is inspired by what could be and energizes others with visions of the future.", Categories: []Category{CategoryAnalytical}},
	{ID: 19, Name: "Harmony", Description: "Looks for consensus and steers the group away from conflict.", Categories: []Category{CategoryTeamOriented}},
	{ID: 20, Name: "Ideation", Description: "Is fascinated by ideas and finds connections between seemingly disparate phenomena.", Categories: []Category{CategoryAnalytical}},
	{ID: 21, Name: "Includer", Description: "Accepts others and works to widen the circle.", Categories: []Category{CategoryTeamOriented}},
	{ID: 22, Name: "Individualization", Description: "Is intrigued by the unique qualities of each person and how people who are different can work together.", Categories: []Category{CategoryTeamOriented, CategoryAnalytical}},
	{ID: 23, Name: "Input", Description: "Craves to know more and collects information of all kinds.", Categories: []Category{CategoryAnalytical}},
	{ID: 24, Name: "Intellection", Description: "Is introspective and appreciates intellectual discussions.", Categories: []Category{CategoryAnalytical}},
	{ID: 25, Name: "Learner", Description: "Has a great desire to learn and is energized by the process of learning itself.", Categories: []Category{CategoryAnalytical}},
	{ID: 26, Name: "Maximizer", Description: "Focuses on strengths to stimulate personal and group excellence.", Categories: []Category{CategoryLeadership}},
	{ID: 27, Name: "Positivity", Description: "Has contagious enthusiasm and gets others excited about what they are doing.", Categories: []Category{CategoryTeamOriented}},
	{ID: 28, Name: "Relator", Description: "Enjoys close relationships and finds deep satisfaction in working hard with friends.", Categories: []Category{CategoryTeamOriented}},
	{ID: 29, Name: "Responsibility", Description: "Takes psychological ownership of commitments and follows through.", Categories: []Category{CategoryExecution}},
	{ID: 30, Name: "Restorative", Description: "Is adept at dealing with problems and figuring out what is wrong.", Categories: []Category{CategoryExecution}},
	{ID: 31, Name: "Self-Assurance", Description: "Feels confident in the ability to manage one's own life and decisions.", Categories: []Category{CategoryLeadership}},
	{ID: 32, Name: "Significance", Description: "Wants to be very important in the eyes of others and seeks recognition.", Categories: []Category{CategoryLeadership}},
	{ID: 33, Name: "Strategic", Description: "Creates alternative ways to proceed and quickly spots the relevant patterns.", Categories: []Category{CategoryAnalytical, CategoryLeadership}},
	{ID: 34, Name: "Woo", Description: "Wins others over and enjoys breaking the ice with new people.", Categories: []Category{CategoryLeadership, CategoryTeamOriented}},
}
