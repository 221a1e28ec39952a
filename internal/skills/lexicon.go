// Package skills provides the skill lexicon, canonicalization and keyword
// based skill extraction.
package skills

import "strings"

// lexicon is the default vocabulary of known skill terms. Entries are stored
// in their canonical lowercase form; multi-word skills are limited to two
// tokens because extraction scans unigrams and adjacent bigrams only.
var lexicon = map[string]struct{}{}

// lexiconEntries spans programming languages, web and mobile frameworks,
// databases, cloud/devops tooling, data science, testing, security, system
// administration, architecture, project management and common platforms.
var lexiconEntries = []string{
	// Programming languages
	"python", "java", "c", "c++", "c#", ".net", "javascript", "typescript",
	"node", "node.js", "go", "golang", "rust", "php", "ruby", "swift",
	"kotlin", "scala", "r", "matlab", "sql", "html", "css", "sass", "scss",

	// Web technologies
	"react", "angular", "vue", "svelte", "next.js", "nuxt.js", "gatsby",
	"express", "nest.js", "django", "flask", "fastapi", "spring",
	"spring boot", "laravel", "symfony", "rails", "asp.net", "dotnet",

	// Mobile development
	"react native", "flutter", "xamarin", "ionic", "cordova",
	"progressive web apps", "pwa",

	// Databases
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
	"cassandra", "dynamodb", "neo4j", "sqlite", "oracle", "sql server",
	"mariadb", "couchdb", "influxdb", "firebase",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "k8s", "terraform",
	"ansible", "chef", "puppet", "jenkins", "gitlab ci", "github actions",
	"circleci", "travis ci", "bamboo", "spinnaker",

	// Data science & AI
	"machine learning", "ml", "deep learning", "dl",
	"artificial intelligence", "ai", "data science", "data analysis",
	"pandas", "numpy", "scipy", "tensorflow", "tf", "pytorch", "keras",
	"scikit-learn", "sklearn", "opencv", "nlp",
	"natural language processing", "computer vision", "neural networks",
	"statistics", "analytics", "tableau", "power bi", "looker", "qlik",
	"excel", "vba", "spark", "hadoop", "kafka", "airflow", "dbt", "etl",

	// Testing & quality
	"unit testing", "integration testing", "test automation", "selenium",
	"cypress", "jest", "mocha", "chai", "pytest", "junit", "testng",
	"cucumber", "bdd", "tdd", "code review", "static analysis",
	"sonarqube", "eslint", "prettier",

	// Security
	"cybersecurity", "penetration testing", "vulnerability assessment",
	"security auditing", "owasp", "firewall", "ssl", "tls", "oauth",
	"oauth2", "jwt", "rbac", "encryption", "cryptography", "secure coding",
	"security compliance", "gdpr", "hipaa", "pci dss",

	// System administration
	"linux", "windows", "unix", "bash", "powershell", "shell scripting",
	"system administration", "network administration", "monitoring",
	"logging", "prometheus", "grafana", "elk stack", "splunk", "new relic",
	"datadog", "zabbix", "nagios",

	// Architecture & design
	"microservices", "rest api", "graphql", "websocket", "grpc", "soap",
	"api design", "system design", "distributed systems", "load balancing",
	"caching", "cdn", "message queues", "event streaming", "cqrs",
	"event sourcing", "domain driven design", "clean architecture",
	"hexagonal architecture",

	// Project management & soft skills
	"agile", "scrum", "kanban", "waterfall", "project management",
	"leadership", "mentoring", "communication", "problem solving",
	"critical thinking", "teamwork", "time management", "adaptability",
	"creativity", "attention to detail", "customer service",
	"stakeholder management", "risk management", "change management",

	// Industry specific
	"fintech", "healthcare", "e-commerce", "gaming", "edtech", "saas",
	"paas", "iaas", "blockchain", "cryptocurrency", "iot", "ar", "vr",
	"metaverse", "quantum computing", "edge computing", "serverless",
	"lambda", "api gateway", "service mesh", "istio", "linkerd",

	// Tools & platforms
	"git", "jira", "confluence", "slack", "teams", "zoom", "figma",
	"sketch", "adobe", "photoshop", "illustrator", "invision", "zeplin",
	"notion", "trello", "asana", "monday.com", "clickup",
}

// synonyms maps common aliases to their canonical skill name.
var synonyms = map[string]string{
	"js":           "javascript",
	"ts":           "typescript",
	"tf":           "tensorflow",
	"scikit learn": "scikit-learn",
	"ml":           "machine learning",
	"dl":           "deep learning",
	"postgresql":   "postgres",
	"go":           "golang",
	"k8s":          "kubernetes",
	"ai":           "artificial intelligence",
	"data eng":     "data engineering",
	"big data":     "data science",
}

func init() {
	for _, entry := range lexiconEntries {
		lexicon[entry] = struct{}{}
	}
}

// Canonicalize resolves a skill token to its canonical form: lowercase,
// trimmed, with known aliases substituted. Unknown tokens are returned
// unchanged, which makes the function idempotent for any input.
func Canonicalize(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := synonyms[t]; ok {
		return canonical
	}
	return t
}

// InLexicon reports whether the canonical form of token is a known skill.
func InLexicon(token string) bool {
	_, ok := lexicon[Canonicalize(token)]
	return ok
}

// LexiconSize returns the number of entries in the default lexicon.
func LexiconSize() int {
	return len(lexicon)
}
