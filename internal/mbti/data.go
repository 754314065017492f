package mbti

// allProfiles holds the 16 built-in personality profiles. Synergy tiers
// reference talent ids from internal/talents; tiers are disjoint per profile
// and the test suite validates every invariant via Catalog.Validate.
var allProfiles = []Profile{
	{
		Code:        "INTJ",
		DisplayName: "The Architect",
		Description: "Independent strategic thinkers who see the long game and quietly build toward it.",
		Characteristics: Characteristics{
			Strengths:          []string{"Long-range strategic planning", "Independent critical thinking", "High standards for competence", "Systems-level pattern recognition"},
			Weaknesses:         []string{"Dismissive of established authority", "Impatient with inefficiency", "Reluctant to share unfinished thinking", "Can overlook interpersonal signals"},
			WorkStyle:          "Works best alone or in small expert groups on complex, open-ended problems with clear goals.",
			CommunicationStyle: "Precise and economical; prefers written arguments over meetings and expects evidence.",
			LearningStyle:      "Absorbs theory first, then tests it against reality; dislikes rote repetition.",
			DecisionMaking:     "Weighs long-term consequences against a private internal model before committing.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Intellectual autonomy", "Ambitious long-term projects", "Competent colleagues", "Visible mastery"},
			Demotivators: []string{"Micromanagement", "Unexplained process", "Small talk-heavy culture"},
			Stressors:    []string{"Forced improvisation in public", "Chronic interruptions", "Decisions made on emotion alone"},
			StressRelief: []string{"Solitary deep work", "Long walks", "Reading outside the field"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Strategic Planner",
			BestEnvironment: "Quiet, autonomous, goal-driven settings with minimal ceremony",
			IdealTeamSize:   "3-5 specialists",
			ConflictStyle:   "Withdraws to analyze, then returns with a reasoned position",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{33, 4, 24, 18, 20, 25, 23, 17},
			Moderate: []int{13, 1, 15, 29, 12, 30, 26, 6},
			Low:      []int{34, 27, 21, 16, 8},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ENFP", "ENTP"},
			Complementary:   []Code{"INFJ", "ENTJ", "INTP"},
			Challenging:     []Code{"ESFP", "ESFJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Systems architecture", "Research", "Strategy consulting", "Engineering"},
			RoleExamples:     []string{"Software architect", "Research scientist", "Strategy analyst", "Investment analyst"},
			DevelopmentAreas: []string{"Sharing work in progress", "Crediting others' contributions", "Patience with slower deciders"},
		},
	},
	{
		Code:        "INTP",
		DisplayName: "The Logician",
		Description: "Curious theorists who take ideas apart to see how they work and rebuild them better.",
		Characteristics: Characteristics{
			Strengths:          []string{"Rigorous logical analysis", "Original conceptual thinking", "Comfort with ambiguity", "Fast absorption of new domains"},
			Weaknesses:         []string{"Loses interest after the puzzle is solved", "Procrastinates on routine work", "Blunt critique of weak reasoning", "Neglects practical follow-through"},
			WorkStyle:          "Thrives on open problems with freedom to explore; resists rigid schedules.",
			CommunicationStyle: "Exploratory and conditional; thinks out loud in hypotheses and caveats.",
			LearningStyle:      "Builds understanding from first principles; needs to know why before how.",
			DecisionMaking:     "Suspends judgment until the logic is airtight, sometimes past the deadline.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Unsolved problems", "Freedom to explore tangents", "Intellectual peers", "Elegant solutions"},
			Demotivators: []string{"Rigid process", "Repetitive tasks", "Appeals to authority"},
			Stressors:    []string{"Emotionally charged confrontation", "Hard deadlines on open questions", "Detailed status reporting"},
			StressRelief: []string{"Unstructured tinkering", "Gaming or puzzles", "Time alone with a new topic"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Conceptual Analyst",
			BestEnvironment: "Loosely structured, idea-rich environments that tolerate tangents",
			IdealTeamSize:   "2-4 collaborators",
			ConflictStyle:   "Treats disagreement as a debate about ideas, not people",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{4, 24, 20, 23, 25, 33, 12, 18},
			Moderate: []int{13, 30, 3, 22, 17, 1, 15, 2},
			Low:      []int{34, 9, 11, 21, 27},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ENTJ", "ESTJ"},
			Complementary:   []Code{"INTJ", "ENTP", "INFJ"},
			Challenging:     []Code{"ESFJ", "ENFJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Software development", "Mathematics", "Data science", "Academic research"},
			RoleExamples:     []string{"Backend engineer", "Data scientist", "Researcher", "Technical writer"},
			DevelopmentAreas: []string{"Finishing what is started", "Translating ideas for non-experts", "Accepting good-enough solutions"},
		},
	},
	{
		Code:        "ENTJ",
		DisplayName: "The Commander",
		Description: "Decisive organizers who turn vision into structure and rally people to execute it.",
		Characteristics: Characteristics{
			Strengths:          []string{"Decisive under pressure", "Natural organizational vision", "Direct accountability", "Drives results through others"},
			Weaknesses:         []string{"Impatient with indecision", "Steamrolls quieter voices", "Underrates emotional context", "Can equate dissent with obstruction"},
			WorkStyle:          "Sets the agenda, delegates aggressively, and measures everything against the goal.",
			CommunicationStyle: "Direct, structured, and challenge-friendly; expects others to push back with substance.",
			LearningStyle:      "Learns fastest by running things and debriefing failures candidly.",
			DecisionMaking:     "Decides quickly from objective criteria and revises when the data demands it.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Clear authority to act", "Ambitious measurable targets", "Competent driven teams", "Winning in competition"},
			Demotivators: []string{"Consensus for its own sake", "Unclear ownership", "Tolerated underperformance"},
			Stressors:    []string{"Loss of control over outcomes", "Prolonged emotional processing", "Stalled decisions"},
			StressRelief: []string{"Intense exercise", "Planning the next campaign", "Debating with trusted peers"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Team Director",
			BestEnvironment: "Fast-moving, merit-driven organizations with room to lead",
			IdealTeamSize:   "5-9 with clear roles",
			ConflictStyle:   "Confronts directly and early, focused on resolution speed",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{7, 33, 2, 17, 26, 9, 1, 31},
			Moderate: []int{4, 18, 29, 15, 8, 32, 25, 13},
			Low:      []int{16, 19, 3, 21, 10},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"INTP", "INFP"},
			Complementary:   []Code{"INTJ", "ENTP", "ESTJ"},
			Challenging:     []Code{"ISFP", "ESFP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Executive management", "Entrepreneurship", "Operations", "Law"},
			RoleExamples:     []string{"General manager", "Founder", "Program director", "Management consultant"},
			DevelopmentAreas: []string{"Listening before deciding", "Valuing process alongside outcomes", "Softening delivery of critique"},
		},
	},
	{
		Code:        "ENTP",
		DisplayName: "The Debater",
		Description: "Quick-witted challengers who generate options faster than anyone can evaluate them.",
		Characteristics: Characteristics{
			Strengths:          []string{"Rapid idea generation", "Persuasive argumentation", "Thrives on change", "Connects unrelated domains"},
			Weaknesses:         []string{"Bores quickly after novelty fades", "Argues for sport", "Leaves execution to others", "Overcommits to parallel ideas"},
			WorkStyle:          "Sprints on new problems, pivots freely, and recruits others to carry things forward.",
			CommunicationStyle: "Energetic and provocative; tests ideas by arguing both sides.",
			LearningStyle:      "Learns through debate and experimentation rather than study plans.",
			DecisionMaking:     "Generates alternatives exhaustively, then commits late and loosely.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Novel challenges", "Sparring partners", "Audience for ideas", "Freedom from routine"},
			Demotivators: []string{"Repetitive execution", "Rule-bound environments", "Being ignored"},
			Stressors:    []string{"Long stretches of detail work", "Rigid hierarchies", "No outlet for ideas"},
			StressRelief: []string{"Brainstorming with friends", "Switching projects", "Improvised travel"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Innovation Catalyst",
			BestEnvironment: "Idea-dense, fast-changing settings that reward experimentation",
			IdealTeamSize:   "4-6 with an executor counterpart",
			ConflictStyle:   "Engages conflict as an energizing debate, sometimes too eagerly",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{20, 2, 33, 8, 34, 18, 25, 23},
			Moderate: []int{31, 9, 26, 4, 24, 3, 27, 32},
			Low:      []int{15, 11, 29, 17, 13},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"INFJ", "INTJ"},
			Complementary:   []Code{"ENFP", "ENTJ", "INTP"},
			Challenging:     []Code{"ISTJ", "ISFJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Product innovation", "Venture building", "Marketing strategy", "Public advocacy"},
			RoleExamples:     []string{"Product manager", "Startup founder", "Growth strategist", "Creative director"},
			DevelopmentAreas: []string{"Following through on commitments", "Choosing battles deliberately", "Respecting working routines"},
		},
	},
	{
		Code:        "INFJ",
		DisplayName: "The Advocate",
		Description: "Insightful idealists who read people deeply and work quietly toward a meaningful vision.",
		Characteristics: Characteristics{
			Strengths:          []string{"Deep insight into people", "Principled long-term vision", "Quiet persuasion", "Synthesis of values and analysis"},
			Weaknesses:         []string{"Perfectionistic privacy", "Burns out from over-giving", "Avoids necessary confrontation", "Takes criticism personally"},
			WorkStyle:          "Needs meaning behind the work; plans carefully and protects focused time.",
			CommunicationStyle: "Warm but selective; communicates best one-on-one or in writing.",
			LearningStyle:      "Connects new material to people and purpose; reflects before applying.",
			DecisionMaking:     "Filters options through values first, then checks them with structured analysis.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Meaningful mission", "Depth over breadth in relationships", "Creative autonomy", "Seeing others grow"},
			Demotivators: []string{"Value conflicts", "Superficial networking", "Constant context switching"},
			Stressors:    []string{"Interpersonal disharmony", "Overexposure to groups", "Compromised principles"},
			StressRelief: []string{"Journaling", "Time in nature", "One deep conversation"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Team Counselor",
			BestEnvironment: "Calm, purpose-driven teams with genuine relationships",
			IdealTeamSize:   "3-5 trusted colleagues",
			ConflictStyle:   "Mediates quietly and seeks the principle underneath the dispute",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{16, 14, 10, 18, 24, 22, 6, 20},
			Moderate: []int{25, 4, 28, 19, 29, 23, 12, 33},
			Low:      []int{9, 7, 34, 2, 31},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ENTP", "ENFP"},
			Complementary:   []Code{"INFP", "INTJ", "ENFJ"},
			Challenging:     []Code{"ESTP", "ESTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Counseling", "Organizational development", "Writing", "Healthcare"},
			RoleExamples:     []string{"People-development lead", "Therapist", "UX researcher", "Nonprofit director"},
			DevelopmentAreas: []string{"Voicing disagreement directly", "Setting boundaries on helping", "Sharing imperfect drafts"},
		},
	},
	{
		Code:        "INFP",
		DisplayName: "The Mediator",
		Description: "Value-driven imaginers who champion authenticity and quietly hold teams to their ideals.",
		Characteristics: Characteristics{
			Strengths:          []string{"Strong personal values", "Creative empathy", "Loyalty to people and causes", "Sees potential others miss"},
			Weaknesses:         []string{"Idealism outpaces pragmatism", "Conflict avoidance", "Difficulty with hard tradeoffs", "Internalizes team tension"},
			WorkStyle:          "Works in absorbed bursts on personally meaningful work; resists rigid metrics.",
			CommunicationStyle: "Gentle and sincere; prefers depth to speed and writing to meetings.",
			LearningStyle:      "Learns through stories and personal relevance rather than abstract drill.",
			DecisionMaking:     "Checks every option against inner values before logic enters.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Alignment with values", "Creative expression", "Helping individuals", "Quiet appreciation"},
			Demotivators: []string{"Cynical environments", "Purely commercial goals", "Public competition"},
			Stressors:    []string{"Sustained interpersonal conflict", "Criticism of motives", "Rigid bureaucracy"},
			StressRelief: []string{"Creative writing or art", "Solitude", "Talking with one trusted person"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Values Keeper",
			BestEnvironment: "Supportive, flexible teams with room for individual expression",
			IdealTeamSize:   "2-4 close collaborators",
			ConflictStyle:   "Withdraws first, then advocates firmly when values are at stake",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{16, 6, 14, 10, 22, 20, 3, 25},
			Moderate: []int{24, 23, 27, 28, 19, 12, 18, 21},
			Low:      []int{7, 9, 15, 11, 2},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ENFJ", "ENTJ"},
			Complementary:   []Code{"INFJ", "ENFP", "ISFP"},
			Challenging:     []Code{"ESTJ", "ISTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Writing and editing", "Psychology", "Design", "Education"},
			RoleExamples:     []string{"Content designer", "Counselor", "Brand storyteller", "Teacher"},
			DevelopmentAreas: []string{"Delivering critical feedback", "Deciding with incomplete ideals", "Promoting own work"},
		},
	},
	{
		Code:        "ENFJ",
		DisplayName: "The Protagonist",
		Description: "Charismatic mentors who organize people around shared growth and make everyone feel seen.",
		Characteristics: Characteristics{
			Strengths:          []string{"Inspires and aligns groups", "Reads room dynamics instantly", "Develops others generously", "Organized follow-through on people matters"},
			Weaknesses:         []string{"Overextends for others", "Sensitive to disapproval", "Smooths over real problems", "Struggles to say no"},
			WorkStyle:          "Orchestrates people and plans together; happiest when the team is growing.",
			CommunicationStyle: "Warm, expressive, and audience-aware; natural public communicator.",
			LearningStyle:      "Learns with and through people, in discussion and teaching.",
			DecisionMaking:     "Optimizes for group harmony and growth, with structure to back it up.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Developing people", "Shared goals", "Public recognition of the team", "Harmonious momentum"},
			Demotivators: []string{"Interpersonal coldness", "Zero-sum politics", "Invisible contributions"},
			Stressors:    []string{"Unresolvable conflict", "Letting someone down", "Isolated work for long periods"},
			StressRelief: []string{"Gathering close friends", "Mentoring", "Organizing something joyful"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Team Builder",
			BestEnvironment: "Collaborative, growth-oriented cultures with visible appreciation",
			IdealTeamSize:   "6-10 with mixed experience levels",
			ConflictStyle:   "Brings parties together early and works for mutual understanding",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{8, 14, 16, 34, 27, 26, 19, 21},
			Moderate: []int{2, 6, 10, 18, 28, 22, 32, 25},
			Low:      []int{13, 4, 15, 24, 12},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"INFP", "ISFP"},
			Complementary:   []Code{"ENFP", "INFJ", "ESFJ"},
			Challenging:     []Code{"ISTP", "ESTP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"People leadership", "Teaching", "Human resources", "Community management"},
			RoleExamples:     []string{"Engineering manager", "Teacher", "HR business partner", "Customer success lead"},
			DevelopmentAreas: []string{"Tolerating necessary conflict", "Protecting personal time", "Letting others fail safely"},
		},
	},
	{
		Code:        "ENFP",
		DisplayName: "The Campaigner",
		Description: "Enthusiastic connectors who spark possibilities in people and projects alike.",
		Characteristics: Characteristics{
			Strengths:          []string{"Contagious enthusiasm", "Sees potential everywhere", "Builds rapport across any divide", "Improvises creatively under change"},
			Weaknesses:         []string{"Starts more than finishes", "Disorganized under routine", "Overpromises from optimism", "Restless without novelty"},
			WorkStyle:          "Works in inspired bursts, fueled by people and new angles; needs variety.",
			CommunicationStyle: "Animated, personal, and story-driven; makes abstract ideas feel alive.",
			LearningStyle:      "Explores broadly and learns by enthusiasm-driven immersion.",
			DecisionMaking:     "Follows energy and values, keeping options open as long as possible.",
		},
		Motivation: Motivation{
			Motivators:   []string{"New possibilities", "Authentic connection", "Creative freedom", "Appreciation of ideas"},
			Demotivators: []string{"Repetitive detail work", "Impersonal bureaucracy", "Skeptical gatekeeping"},
			Stressors:    []string{"Rigid routines", "Sustained isolation", "Conflict between people they love"},
			StressRelief: []string{"Spontaneous adventures", "Talking it through with friends", "Creative side projects"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Energy Source",
			BestEnvironment: "Open, social, possibility-rich settings with flexible structure",
			IdealTeamSize:   "4-8 with diverse personalities",
			ConflictStyle:   "Defuses tension with warmth and reframes toward common ground",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{34, 8, 27, 20, 2, 21, 16, 3},
			Moderate: []int{14, 22, 10, 26, 18, 25, 23, 28},
			Low:      []int{15, 11, 17, 13, 29},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"INTJ", "INFJ"},
			Complementary:   []Code{"ENFJ", "ENTP", "INFP"},
			Challenging:     []Code{"ISTJ", "ESTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Marketing", "Journalism", "Event production", "Talent development"},
			RoleExamples:     []string{"Campaign manager", "Journalist", "Community builder", "Recruiter"},
			DevelopmentAreas: []string{"Finishing before starting anew", "Building sustaining routines", "Filtering commitments"},
		},
	},
	{
		Code:        "ISTJ",
		DisplayName: "The Logistician",
		Description: "Dependable systematizers who keep their word and keep the machine running.",
		Characteristics: Characteristics{
			Strengths:          []string{"Reliability under all conditions", "Methodical thoroughness", "Institutional memory", "Calm, factual judgment"},
			Weaknesses:         []string{"Resists unproven change", "Underestimates morale factors", "Rigid about procedure", "Slow to voice appreciation"},
			WorkStyle:          "Plans the work, works the plan; deadlines and checklists are sacred.",
			CommunicationStyle: "Factual, concise, and literal; documents everything that matters.",
			LearningStyle:      "Masters material sequentially through practice and precedent.",
			DecisionMaking:     "Applies proven rules and past experience before novel theories.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Clear responsibilities", "Stable processes", "Visible completion", "Earned trust"},
			Demotivators: []string{"Shifting priorities", "Improvised process", "Unreliable colleagues"},
			Stressors:    []string{"Last-minute changes", "Ambiguous expectations", "Public improvisation"},
			StressRelief: []string{"Ordering the environment", "Familiar hobbies", "Quiet time at home"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Reliability Anchor",
			BestEnvironment: "Structured, predictable organizations with explicit standards",
			IdealTeamSize:   "3-6 with defined roles",
			ConflictStyle:   "Refers to agreements and facts, avoids emotional escalation",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{29, 15, 11, 13, 1, 17, 12, 6},
			Moderate: []int{4, 30, 5, 28, 23, 25, 24, 22},
			Low:      []int{34, 20, 2, 27, 3},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ESFP", "ESTP"},
			Complementary:   []Code{"ISFJ", "ESTJ", "ISTP"},
			Challenging:     []Code{"ENFP", "ENTP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Accounting", "Operations", "Quality assurance", "Public administration"},
			RoleExamples:     []string{"Financial controller", "Operations manager", "QA lead", "Compliance officer"},
			DevelopmentAreas: []string{"Flexibility when plans shift", "Expressing appreciation aloud", "Trying unproven approaches"},
		},
	},
	{
		Code:        "ISFJ",
		DisplayName: "The Defender",
		Description: "Devoted protectors who notice what everyone needs and quietly provide it.",
		Characteristics: Characteristics{
			Strengths:          []string{"Meticulous, caring service", "Remembers personal details", "Steady under routine pressure", "Protects team wellbeing"},
			Weaknesses:         []string{"Overloads self silently", "Avoids claiming credit", "Resists disruptive change", "Takes criticism to heart"},
			WorkStyle:          "Steady, supportive, and detail-perfect; anticipates needs before they are voiced.",
			CommunicationStyle: "Considerate and concrete; softens hard messages, sometimes too much.",
			LearningStyle:      "Learns by careful observation and guided practice.",
			DecisionMaking:     "Weighs impact on people against established practice.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Helping concretely", "Stable relationships", "Quiet recognition", "Well-defined duties"},
			Demotivators: []string{"Chaotic priorities", "Ingratitude", "Confrontational cultures"},
			Stressors:    []string{"Open conflict", "Sudden reorganization", "Being publicly singled out"},
			StressRelief: []string{"Caring for home and family", "Familiar routines", "Small acts of creativity"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Supportive Guardian",
			BestEnvironment: "Considerate, stable teams where care work is valued",
			IdealTeamSize:   "3-6 long-tenured members",
			ConflictStyle:   "Absorbs tension and smooths it privately before it spreads",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{29, 19, 16, 11, 28, 6, 14, 13},
			Moderate: []int{1, 15, 5, 21, 10, 12, 23, 30},
			Low:      []int{7, 9, 2, 31, 18},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ESFP", "ESTP"},
			Complementary:   []Code{"ISTJ", "ESFJ", "ISFP"},
			Challenging:     []Code{"ENTP", "ENTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Nursing and care", "Administration", "Customer support", "Education"},
			RoleExamples:     []string{"Office manager", "Nurse", "Support specialist", "Librarian"},
			DevelopmentAreas: []string{"Asking for help early", "Saying no to overload", "Welcoming useful change"},
		},
	},
	{
		Code:        "ESTJ",
		DisplayName: "The Executive",
		Description: "Organized drivers who set standards, enforce them fairly, and get things shipped.",
		Characteristics: Characteristics{
			Strengths:          []string{"Operational command", "Clear standards and follow-up", "Comfortable with authority", "Gets closure on everything"},
			Weaknesses:         []string{"Inflexible about methods", "Impatient with abstraction", "Blunt past the point of useful", "Slow to delegate judgment"},
			WorkStyle:          "Runs on schedules, checklists, and visible accountability.",
			CommunicationStyle: "Direct and procedural; says exactly what is expected and when.",
			LearningStyle:      "Prefers proven curricula and hands-on drill over theory.",
			DecisionMaking:     "Applies established criteria fast and stands by the call.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Authority matched to accountability", "Orderly execution", "Tangible results", "Respect for experience"},
			Demotivators: []string{"Chronic ambiguity", "Rule-breaking tolerated", "Endless ideation"},
			Stressors:    []string{"Disorganized environments", "Untested ideas forced through", "Emotional volatility"},
			StressRelief: []string{"Physical projects", "Organized social events", "Clearing the backlog"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Operations Driver",
			BestEnvironment: "Structured organizations with clear chains of responsibility",
			IdealTeamSize:   "5-10 with explicit roles",
			ConflictStyle:   "Addresses issues head-on through the proper channel",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{7, 1, 29, 11, 15, 2, 17, 5},
			Moderate: []int{9, 31, 26, 30, 13, 12, 32, 8},
			Low:      []int{20, 16, 3, 10, 24},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ISTP", "INTP"},
			Complementary:   []Code{"ISTJ", "ESFJ", "ENTJ"},
			Challenging:     []Code{"INFP", "ENFP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Operations management", "Logistics", "Finance", "Military and public service"},
			RoleExamples:     []string{"Plant manager", "Project manager", "Branch director", "Chief of staff"},
			DevelopmentAreas: []string{"Entertaining unproven ideas", "Reading emotional undercurrents", "Delegating outcomes, not tasks"},
		},
	},
	{
		Code:        "ESFJ",
		DisplayName: "The Consul",
		Description: "Sociable caretakers who organize people into communities and keep everyone included.",
		Characteristics: Characteristics{
			Strengths:          []string{"Builds warm, inclusive groups", "Practical organization of people", "Attentive to stated needs", "Consistent and dutiful"},
			Weaknesses:         []string{"Needs external approval", "Avoids unpopular decisions", "Takes conflict personally", "Can enforce conformity"},
			WorkStyle:          "Coordinates people and logistics in equal measure; keeps everyone informed.",
			CommunicationStyle: "Friendly, frequent, and personal; checks in on people, not just work.",
			LearningStyle:      "Learns best in groups with clear expectations and encouragement.",
			DecisionMaking:     "Weighs group consensus and precedent heavily.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Appreciation", "Harmonious teamwork", "Clear social structure", "Helping visibly"},
			Demotivators: []string{"Criticism of their care", "Exclusionary behavior", "Cold efficiency-only cultures"},
			Stressors:    []string{"Interpersonal rejection", "Value conflicts in the group", "Unclear social expectations"},
			StressRelief: []string{"Hosting and gathering", "Tidying and organizing", "Talking with close friends"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Community Organizer",
			BestEnvironment: "Warm, well-organized teams with strong traditions",
			IdealTeamSize:   "6-10 with social cohesion",
			ConflictStyle:   "Rallies the group toward reconciliation and shared norms",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{19, 21, 34, 8, 27, 28, 29, 5},
			Moderate: []int{16, 14, 6, 11, 1, 15, 10, 32},
			Low:      []int{4, 24, 20, 13, 31},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ISFP", "ISTP"},
			Complementary:   []Code{"ESFP", "ISFJ", "ENFJ"},
			Challenging:     []Code{"INTP", "INTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Event management", "Healthcare coordination", "Sales", "Hospitality"},
			RoleExamples:     []string{"Account manager", "Office coordinator", "Care coordinator", "Community manager"},
			DevelopmentAreas: []string{"Deciding without consensus", "Accepting impersonal critique", "Tolerating nonconformity"},
		},
	},
	{
		Code:        "ISTP",
		DisplayName: "The Virtuoso",
		Description: "Hands-on troubleshooters who stay cool in a crisis and fix what others only discuss.",
		Characteristics: Characteristics{
			Strengths:          []string{"Calm crisis response", "Practical mechanical insight", "Efficient minimalism", "Learns tools by touch"},
			Weaknesses:         []string{"Disengages from long planning", "Blunt or silent in groups", "Bores without real problems", "Commitment-shy"},
			WorkStyle:          "Acts when action is needed, conserves effort otherwise; hates busywork.",
			CommunicationStyle: "Sparse and concrete; shows rather than tells.",
			LearningStyle:      "Learns by taking things apart and trying them, not by lectures.",
			DecisionMaking:     "Reads the immediate situation and picks the most efficient move.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Real problems to fix", "Autonomy over method", "Tangible tools and systems", "Room to experiment"},
			Demotivators: []string{"Meetings about meetings", "Theoretical debates", "Close supervision"},
			Stressors:    []string{"Emotional demands", "Long-range commitments", "Rigid schedules"},
			StressRelief: []string{"Working with hands", "Solo sports", "Time outdoors"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Practical Problem-Solver",
			BestEnvironment: "Hands-on settings where results trump process",
			IdealTeamSize:   "2-4 doers",
			ConflictStyle:   "Stays detached, states facts once, and walks away from drama",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{4, 30, 3, 13, 17, 33, 1, 23},
			Moderate: []int{15, 29, 12, 24, 25, 5, 31, 9},
			Low:      []int{34, 8, 21, 27, 32},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ESTJ", "ESFJ"},
			Complementary:   []Code{"ISTJ", "ESTP", "INTP"},
			Challenging:     []Code{"ENFJ", "ENFP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Site reliability", "Field engineering", "Emergency services", "Skilled trades"},
			RoleExamples:     []string{"SRE", "Field technician", "Paramedic", "Pilot"},
			DevelopmentAreas: []string{"Engaging in long-term planning", "Sharing reasoning with the team", "Staying present in discussions"},
		},
	},
	{
		Code:        "ISFP",
		DisplayName: "The Adventurer",
		Description: "Gentle pragmatists with a strong aesthetic sense who support the team in their own quiet way.",
		Characteristics: Characteristics{
			Strengths:          []string{"Grounded empathy", "Aesthetic craftsmanship", "Flexible and present", "Loyal without fanfare"},
			Weaknesses:         []string{"Avoids long-range planning", "Withdraws from conflict", "Undersells own work", "Sensitive to harsh critique"},
			WorkStyle:          "Works quietly at their own rhythm, caring about craft details others skip.",
			CommunicationStyle: "Soft-spoken and concrete; expresses more through work than words.",
			LearningStyle:      "Learns by doing in a low-pressure setting with room to experiment.",
			DecisionMaking:     "Decides in the moment by personal values and practical feel.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Craftsmanship", "Personal space", "Appreciation of their work", "Harmony around them"},
			Demotivators: []string{"Public competition", "Rigid metrics", "Confrontational management"},
			Stressors:    []string{"Sustained conflict", "Rigid long-term commitments", "Harsh public criticism"},
			StressRelief: []string{"Creative making", "Nature and movement", "Music"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Quiet Craftsman",
			BestEnvironment: "Low-conflict, flexible settings that respect individual pace",
			IdealTeamSize:   "2-4 familiar faces",
			ConflictStyle:   "Steps back, cools off, and makes peace through actions",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{3, 16, 19, 28, 10, 6, 22, 27},
			Moderate: []int{14, 21, 1, 29, 30, 25, 23, 5},
			Low:      []int{7, 9, 32, 2, 33},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ENFJ", "ESFJ"},
			Complementary:   []Code{"ISFJ", "INFP", "ESFP"},
			Challenging:     []Code{"ENTJ", "ESTJ"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Design", "Culinary arts", "Veterinary care", "Craft manufacturing"},
			RoleExamples:     []string{"Visual designer", "Chef", "Veterinary technician", "Photographer"},
			DevelopmentAreas: []string{"Planning beyond the near term", "Voicing disagreement", "Presenting own achievements"},
		},
	},
	{
		Code:        "ESTP",
		DisplayName: "The Entrepreneur",
		Description: "Bold realists who move first, read the room fast, and thrive where stakes are immediate.",
		Characteristics: Characteristics{
			Strengths:          []string{"Acts decisively in the moment", "Reads people and situations fast", "Negotiates fearlessly", "Energizes stalled efforts"},
			Weaknesses:         []string{"Impatient with theory", "Takes risks past prudence", "Bored by maintenance work", "Blunt in sensitive moments"},
			WorkStyle:          "Best in the thick of action with quick feedback loops and visible stakes.",
			CommunicationStyle: "Punchy, persuasive, and unafraid of friction.",
			LearningStyle:      "Learns by trial under real conditions, not in classrooms.",
			DecisionMaking:     "Decides fast on observable facts and adjusts on the fly.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Immediate challenges", "Freedom to maneuver", "Competition", "Tangible wins"},
			Demotivators: []string{"Slow deliberation", "Paper processes", "Hypothetical planning"},
			Stressors:    []string{"Confinement to a desk", "Long theoretical meetings", "Indecisive leadership"},
			StressRelief: []string{"Competitive sports", "Social nights out", "Fast-paced hobbies"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Action Spark",
			BestEnvironment: "Dynamic, high-stakes settings with quick feedback",
			IdealTeamSize:   "3-6 fast movers",
			ConflictStyle:   "Meets conflict directly, keeps it short, moves on",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{2, 9, 34, 31, 3, 30, 7, 1},
			Moderate: []int{8, 33, 5, 17, 26, 27, 32, 23},
			Low:      []int{24, 12, 13, 16, 6},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ISFJ", "ISTJ"},
			Complementary:   []Code{"ESFP", "ISTP", "ESTJ"},
			Challenging:     []Code{"INFJ", "INFP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Sales", "Trading", "Emergency response", "Sports and entertainment"},
			RoleExamples:     []string{"Sales lead", "Trader", "Incident commander", "Agent"},
			DevelopmentAreas: []string{"Sitting with long-term strategy", "Weighing downside risk", "Softening delivery"},
		},
	},
	{
		Code:        "ESFP",
		DisplayName: "The Entertainer",
		Description: "Spontaneous team spirits who make work enjoyable and keep morale visibly alive.",
		Characteristics: Characteristics{
			Strengths:          []string{"Lifts group morale instantly", "Practical people skills", "Adapts cheerfully to change", "Makes newcomers feel welcome"},
			Weaknesses:         []string{"Avoids unpleasant planning", "Distracted by social energy", "Sensitive to criticism", "Short attention for abstractions"},
			WorkStyle:          "Works best with people around, concrete tasks, and room for fun.",
			CommunicationStyle: "Expressive, playful, and inclusive; keeps things light even under load.",
			LearningStyle:      "Learns through doing with others, especially when it is enjoyable.",
			DecisionMaking:     "Chooses what feels right for people here and now.",
		},
		Motivation: Motivation{
			Motivators:   []string{"Lively atmosphere", "Shared celebration", "Helping people directly", "Variety in the day"},
			Demotivators: []string{"Isolated desk work", "Heavy documentation", "Grim, joyless cultures"},
			Stressors:    []string{"Long solitary analysis", "Rigid deadlines stacked together", "Interpersonal coldness"},
			StressRelief: []string{"Social gatherings", "Music and dancing", "Spontaneous outings"},
		},
		TeamDynamics: TeamDynamics{
			NaturalRole:     "Morale Keeper",
			BestEnvironment: "People-facing, lively settings with visible impact",
			IdealTeamSize:   "5-9 sociable members",
			ConflictStyle:   "Lightens the mood first, then talks it out one-on-one",
		},
		TalentSynergy: TalentSynergy{
			High:     []int{34, 27, 8, 3, 21, 16, 2, 28},
			Moderate: []int{19, 14, 10, 22, 5, 26, 9, 31},
			Low:      []int{15, 13, 24, 12, 17},
		},
		Compatibility: Compatibility{
			NaturalPartners: []Code{"ISFJ", "ISTJ"},
			Complementary:   []Code{"ESFJ", "ESTP", "ISFP"},
			Challenging:     []Code{"INTJ", "INTP"},
		},
		CareerPaths: CareerPaths{
			IdealFields:      []string{"Hospitality", "Retail leadership", "Public relations", "Recreation"},
			RoleExamples:     []string{"Event host", "Store manager", "PR specialist", "Trainer"},
			DevelopmentAreas: []string{"Following through on plans", "Handling critique without deflection", "Building quiet-work stamina"},
		},
	},
}
