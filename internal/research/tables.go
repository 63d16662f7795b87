package research

// Company research table. Keys are lowercased company names.
var companies = map[string]CompanyResearch{
	"google": {
		Name:    "Google",
		Summary: "Multinational technology company focused on internet services and products. Known for rigorous technical interviews and a strong engineering culture.",
		InterviewProcess: []string{
			"Phone screen (45 minutes) - coding and problem-solving",
			"Technical interview - algorithms and data structures",
			"Technical interview - system design or domain-specific",
			"Behavioral interview - culture fit",
			"Hiring committee review",
		},
		CommonQuestions: []string{
			"Why do you want to work at Google?",
			"Tell me about a time you solved a complex technical problem",
			"How do you handle ambiguity in projects?",
		},
		TechStack: []string{"C++", "Java", "Python", "Go", "JavaScript", "Kubernetes", "TensorFlow"},
		Culture:   "Innovation-driven, data-oriented, collaborative, emphasis on scale and impact",
		InterviewTips: []string{
			"Practice medium-to-hard coding problems",
			"Study system design fundamentals",
			"Prepare behavioral examples using the STAR method",
			"Be ready to discuss scalability and performance",
		},
	},
	"amazon": {
		Name:    "Amazon",
		Summary: "Global e-commerce and cloud computing company. Known for customer obsession, leadership principles, and diverse technical challenges.",
		InterviewProcess: []string{
			"Phone screen (1 hour) - technical and behavioral",
			"On-site loop (4-5 interviews)",
			"Bar raiser interview",
			"Hiring manager review",
		},
		CommonQuestions: []string{
			"Tell me about a time you disagreed with a manager",
			"Describe a situation where you had to deliver results under pressure",
			"How do you handle conflicting priorities?",
		},
		TechStack: []string{"Java", "Python", "JavaScript", "AWS", "DynamoDB", "React", "Node.js"},
		Culture:   "Customer-obsessed, ownership mindset, high standards, bias for action",
		InterviewTips: []string{
			"Study the leadership principles and map stories to them",
			"Prepare examples of ownership and customer impact",
			"Practice coding with AWS service trade-offs in mind",
		},
	},
	"microsoft": {
		Name:    "Microsoft",
		Summary: "Technology company spanning cloud, productivity software, and developer tools. Interviews emphasize problem-solving and collaboration.",
		InterviewProcess: []string{
			"Recruiter screen",
			"Technical phone screen",
			"On-site loop (3-4 interviews) - coding, design, behavioral",
			"As-appropriate interview with senior leader",
		},
		CommonQuestions: []string{
			"Why Microsoft?",
			"Describe a project you are proud of",
			"How do you approach learning a new technology?",
		},
		TechStack: []string{"C#", ".NET", "TypeScript", "Azure", "SQL", "React"},
		Culture:   "Growth mindset, inclusive, customer-focused",
		InterviewTips: []string{
			"Expect collaborative problem-solving rather than trick questions",
			"Show growth-mindset framing when discussing failures",
		},
	},
}

var defaultCompany = CompanyResearch{
	Name:    "General",
	Summary: "General interview guidance applicable to most technology companies.",
	InterviewProcess: []string{
		"Recruiter screen",
		"Technical phone screen",
		"On-site or virtual loop - coding, design, behavioral",
		"Offer decision",
	},
	CommonQuestions: []string{
		"Walk me through your resume",
		"Why are you interested in this role?",
		"Describe a challenging project and your contribution",
	},
	TechStack: []string{},
	Culture:   "Varies by company; research recent news and engineering blog posts",
	InterviewTips: []string{
		"Research the company's products and tech stack",
		"Practice explaining past projects concisely",
		"Prepare questions to ask the interviewer",
	},
}

// Role fragments in match order. Longer fragments come first so a compound
// title like "Cloud DevOps Engineer" resolves to the most specific role.
var roleKeys = []string{"full stack", "frontend", "backend", "devops", "cloud", "data", "ml"}

// Role research table, keyed by lowercased role fragment.
var roles = map[string]RoleResearch{
	"frontend": {
		Title:      "Frontend Developer",
		Difficulty: "medium",
		FocusAreas: []string{"UI implementation", "State management", "Performance", "Accessibility"},
		CoreSkills: []string{"JavaScript", "React", "HTML", "CSS"},
		PrepTopics: []string{"DOM and event model", "React rendering lifecycle", "CSS layout", "Bundling and code splitting"},
	},
	"backend": {
		Title:      "Backend Developer",
		Difficulty: "medium",
		FocusAreas: []string{"API design", "Data modeling", "Reliability", "Performance"},
		CoreSkills: []string{"Node.js", "Java", "SQL", "Docker"},
		PrepTopics: []string{"REST semantics", "Database indexing", "Caching strategies", "Concurrency basics"},
	},
	"full stack": {
		Title:      "Full Stack Developer",
		Difficulty: "medium",
		FocusAreas: []string{"End-to-end feature delivery", "API design", "UI implementation"},
		CoreSkills: []string{"JavaScript", "React", "Node.js", "SQL"},
		PrepTopics: []string{"HTTP end to end", "Auth flows", "Schema design", "Frontend state"},
	},
	"devops": {
		Title:      "DevOps Engineer",
		Difficulty: "hard",
		FocusAreas: []string{"Infrastructure as code", "CI/CD", "Observability", "Incident response"},
		CoreSkills: []string{"AWS", "Docker", "Kubernetes"},
		PrepTopics: []string{"Container orchestration", "Networking fundamentals", "Deployment strategies", "Monitoring and alerting"},
	},
	"cloud": {
		Title:      "Cloud Engineer",
		Difficulty: "hard",
		FocusAreas: []string{"Cloud architecture", "Cost optimization", "Security", "Automation"},
		CoreSkills: []string{"AWS", "Python", "Docker"},
		PrepTopics: []string{"VPC and IAM design", "Serverless trade-offs", "Infrastructure as code", "High availability patterns"},
	},
	"data": {
		Title:      "Data Engineer",
		Difficulty: "hard",
		FocusAreas: []string{"Data pipelines", "Warehousing", "Data quality"},
		CoreSkills: []string{"Python", "SQL", "Spark"},
		PrepTopics: []string{"Batch vs streaming", "Partitioning", "Schema evolution", "SQL optimization"},
	},
	"ml": {
		Title:      "ML Engineer",
		Difficulty: "hard",
		FocusAreas: []string{"Model training and serving", "Feature engineering", "Evaluation"},
		CoreSkills: []string{"Python", "TensorFlow", "SQL"},
		PrepTopics: []string{"Bias/variance trade-off", "Model serving architecture", "Experiment tracking", "Data drift"},
	},
}

var defaultRole = RoleResearch{
	Title:      "Software Engineer",
	Difficulty: "medium",
	FocusAreas: []string{"Problem solving", "Code quality", "Collaboration"},
	CoreSkills: []string{"Data structures", "Algorithms"},
	PrepTopics: []string{"Arrays and strings", "Hash maps", "Trees and graphs", "Big-O analysis"},
}
