package taxonomy

import "github.com/jonathan/profile-matcher/internal/types"

// DefaultDefinition returns the built-in skill taxonomy used when no external
// taxonomy file is configured.
func DefaultDefinition() *Definition {
	return &Definition{
		Skills: []SkillDef{
			// Languages
			{Name: "Python", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "Go", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "Java", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "JavaScript", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "TypeScript", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "C++", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "C#", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "Ruby", Category: types.CategoryTechnical, Demand: DemandLow},
			{Name: "Rust", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "SQL", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "Scala", Category: types.CategoryTechnical, Demand: DemandLow},

			// Frameworks and platforms
			{Name: "React", Category: types.CategoryTechnical, Demand: DemandHigh},
			{Name: "Angular", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "Vue", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "Node.js", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "Django", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "Spring", Category: types.CategoryTechnical, Demand: DemandMedium},
			{Name: "GraphQL", Category: types.CategoryTechnical, Demand: DemandMedium},

			// Cloud and infrastructure
			{Name: "AWS", Category: types.CategoryTools, Demand: DemandHigh},
			{Name: "Azure", Category: types.CategoryTools, Demand: DemandHigh},
			{Name: "GCP", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "Kubernetes", Category: types.CategoryTools, Demand: DemandHigh},
			{Name: "Docker", Category: types.CategoryTools, Demand: DemandHigh},
			{Name: "Terraform", Category: types.CategoryTools, Demand: DemandHigh},
			{Name: "Jenkins", Category: types.CategoryTools, Demand: DemandLow},
			{Name: "Git", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "Linux", Category: types.CategoryTools, Demand: DemandMedium},

			// Data
			{Name: "Machine Learning", Category: types.CategoryAnalytics, Demand: DemandHigh},
			{Name: "Deep Learning", Category: types.CategoryAnalytics, Demand: DemandMedium},
			{Name: "Data Analysis", Category: types.CategoryAnalytics, Demand: DemandHigh},
			{Name: "Data Engineering", Category: types.CategoryAnalytics, Demand: DemandHigh},
			{Name: "TensorFlow", Category: types.CategoryAnalytics, Demand: DemandMedium},
			{Name: "PyTorch", Category: types.CategoryAnalytics, Demand: DemandMedium},
			{Name: "Pandas", Category: types.CategoryAnalytics, Demand: DemandMedium},
			{Name: "Tableau", Category: types.CategoryAnalytics, Demand: DemandLow},
			{Name: "Spark", Category: types.CategoryAnalytics, Demand: DemandMedium},
			{Name: "PostgreSQL", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "MongoDB", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "Redis", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "Kafka", Category: types.CategoryTools, Demand: DemandMedium},
			{Name: "Elasticsearch", Category: types.CategoryTools, Demand: DemandLow},

			// Management and soft skills
			{Name: "Leadership", Category: types.CategoryManagement, Demand: DemandMedium},
			{Name: "Project Management", Category: types.CategoryManagement, Demand: DemandMedium},
			{Name: "Product Management", Category: types.CategoryManagement, Demand: DemandMedium},
			{Name: "Agile", Category: types.CategoryManagement, Demand: DemandMedium},
			{Name: "Scrum", Category: types.CategoryManagement, Demand: DemandLow},
			{Name: "Mentoring", Category: types.CategorySoftSkills, Demand: DemandLow},
			{Name: "Communication", Category: types.CategoryCommunication, Demand: DemandMedium},
			{Name: "Public Speaking", Category: types.CategoryCommunication, Demand: DemandLow},
			{Name: "Technical Writing", Category: types.CategoryCommunication, Demand: DemandLow},
			{Name: "Problem Solving", Category: types.CategorySoftSkills, Demand: DemandMedium},
			{Name: "Teamwork", Category: types.CategorySoftSkills, Demand: DemandLow},
			{Name: "Stakeholder Management", Category: types.CategoryManagement, Demand: DemandLow},

			// Design
			{Name: "UX Design", Category: types.CategoryDesign, Demand: DemandMedium},
			{Name: "UI Design", Category: types.CategoryDesign, Demand: DemandMedium},
			{Name: "Figma", Category: types.CategoryDesign, Demand: DemandMedium},

			// Domain knowledge
			{Name: "Microservices", Category: types.CategoryDomainKnowledge, Demand: DemandHigh},
			{Name: "Distributed Systems", Category: types.CategoryDomainKnowledge, Demand: DemandHigh},
			{Name: "System Design", Category: types.CategoryDomainKnowledge, Demand: DemandHigh},
			{Name: "Security", Category: types.CategoryDomainKnowledge, Demand: DemandHigh},
			{Name: "DevOps", Category: types.CategoryDomainKnowledge, Demand: DemandHigh},
			{Name: "CI/CD", Category: types.CategoryDomainKnowledge, Demand: DemandMedium},
			{Name: "REST APIs", Category: types.CategoryDomainKnowledge, Demand: DemandMedium},
		},
		Synonyms: map[string][]string{
			"AWS":              {"Amazon Web Services", "AWS Cloud"},
			"GCP":              {"Google Cloud", "Google Cloud Platform"},
			"Azure":            {"Microsoft Azure"},
			"Kubernetes":       {"k8s"},
			"JavaScript":       {"JS", "ECMAScript"},
			"TypeScript":       {"TS"},
			"Go":               {"Golang"},
			"Machine Learning": {"ML"},
			"Deep Learning":    {"Neural Networks"},
			"Node.js":          {"NodeJS", "Node"},
			"React":            {"React.js", "ReactJS"},
			"Vue":              {"Vue.js", "VueJS"},
			"PostgreSQL":       {"Postgres"},
			"CI/CD":            {"Continuous Integration", "Continuous Delivery"},
			"REST APIs":        {"RESTful APIs", "REST"},
			"UX Design":        {"User Experience Design"},
			"Project Management": {"PM"},
		},
		Roles: []RoleDef{
			{Role: "data scientist", Skills: []string{"Python", "Machine Learning", "SQL", "Pandas", "Deep Learning", "Spark", "Communication"}},
			{Role: "data engineer", Skills: []string{"Python", "SQL", "Spark", "Kafka", "Data Engineering", "AWS", "Docker"}},
			{Role: "data analyst", Skills: []string{"SQL", "Data Analysis", "Tableau", "Python", "Communication"}},
			{Role: "machine learning engineer", Skills: []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "Kubernetes", "Docker"}},
			{Role: "backend engineer", Skills: []string{"Go", "Python", "SQL", "PostgreSQL", "Redis", "Microservices", "REST APIs", "Docker"}},
			{Role: "frontend engineer", Skills: []string{"JavaScript", "TypeScript", "React", "GraphQL", "UX Design"}},
			{Role: "full stack", Skills: []string{"JavaScript", "TypeScript", "React", "Node.js", "SQL", "Docker"}},
			{Role: "devops engineer", Skills: []string{"Kubernetes", "Docker", "Terraform", "AWS", "CI/CD", "Linux", "Python"}},
			{Role: "site reliability engineer", Skills: []string{"Kubernetes", "Linux", "Go", "Terraform", "Distributed Systems", "CI/CD"}},
			{Role: "security engineer", Skills: []string{"Security", "Linux", "Python", "AWS", "DevOps"}},
			{Role: "engineering manager", Skills: []string{"Leadership", "Mentoring", "Project Management", "Agile", "Stakeholder Management", "System Design"}},
			{Role: "product manager", Skills: []string{"Product Management", "Stakeholder Management", "Data Analysis", "Communication", "Agile"}},
			{Role: "software engineer", Skills: []string{"Python", "Go", "SQL", "Git", "System Design", "Docker", "REST APIs"}},
			{Role: "designer", Skills: []string{"UX Design", "UI Design", "Figma", "Communication"}},
		},
	}
}

// Default builds the Taxonomy for the built-in definition. It panics only if
// the built-in tables are inconsistent, which is a programming error.
func Default() *Taxonomy {
	t, err := New(DefaultDefinition())
	if err != nil {
		panic("taxonomy: invalid built-in definition: " + err.Error())
	}
	return t
}
