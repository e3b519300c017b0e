package recommend

import (
	"regexp"
	"strings"

	"contentshop/internal/dbmysql"
)

// classifyThreshold is the minimum winning score before content leaves the
// mixed bucket.
const classifyThreshold = 0.3

var techKeywordGroups = map[string][]string{
	"programming": {
		"code", "programming", "development", "software", "api", "database",
		"algorithm", "framework", "library", "python", "javascript", "react",
		"node.js", "sql", "html", "css", "git", "github", "docker", "kubernetes",
		"cloud", "aws", "azure", "deployment", "server", "backend", "frontend",
		"full-stack", "devops", "ci/cd", "testing", "debugging", "refactoring",
	},
	"tech_concepts": {
		"machine learning", "ai", "artificial intelligence", "data science",
		"cybersecurity", "blockchain", "iot", "automation", "integration",
		"architecture", "microservices", "scalability", "performance",
		"optimization", "analytics", "big data", "neural network",
	},
	"technical_roles": {
		"developer", "engineer", "programmer", "architect", "devops",
		"data scientist", "analyst", "technical lead", "cto", "tech team",
	},
}

var businessKeywordGroups = map[string][]string{
	"strategy": {
		"strategy", "business model", "revenue", "profit", "growth", "market",
		"customer", "client", "sales", "marketing", "roi", "kpi", "metrics",
		"budget", "finance", "investment", "stakeholder", "partnership",
	},
	"management": {
		"management", "leadership", "team", "project management", "agile",
		"scrum", "planning", "roadmap", "milestone", "delivery", "timeline",
		"resource", "allocation", "efficiency", "productivity", "workflow",
	},
	"business_roles": {
		"manager", "director", "ceo", "cfo", "cmo", "vp", "executive",
		"business analyst", "product manager", "project manager", "consultant",
		"stakeholder", "decision maker",
	},
}

var techCategories = map[string]struct{}{
	"Tutorial": {}, "Documentation": {}, "Technical Guide": {}, "API Reference": {},
}

var businessCategories = map[string]struct{}{
	"Business Plan": {}, "Market Analysis": {}, "Strategy Document": {}, "Financial Report": {},
}

var (
	codeTokenRe    = regexp.MustCompile(`\b(function|class|import|export|const|let|var)\b`)
	sqlVerbRe      = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b`)
	methodCallRe   = regexp.MustCompile(`[a-zA-Z]+\.[a-zA-Z]+\([^)]*\)`)
	moneyPatternRe = regexp.MustCompile(`\$[\d,]+|\b\d+%|\bQ[1-4]\b|\bFY\d{4}\b`)
	trendPhraseRe  = regexp.MustCompile(`\b(increase|decrease|growth|decline) (by|of) \d+%`)
	financeTermRe  = regexp.MustCompile(`\b(revenue|profit|loss|budget|cost)\b`)
)

// AudienceClassifier labels content as tech, business or mixed from keyword
// density and a few syntax patterns.
type AudienceClassifier struct{}

func NewAudienceClassifier() *AudienceClassifier {
	return &AudienceClassifier{}
}

// ClassifyAudience picks the audience with the higher score, requiring it to
// clear the threshold; everything else is mixed.
func (cl *AudienceClassifier) ClassifyAudience(title, body, category string, tags []string) string {
	text := strings.ToLower(title + " " + body + " " + strings.Join(tags, " "))

	tech := cl.TechScore(text, category)
	business := cl.BusinessScore(text, category)

	switch {
	case tech > business && tech > classifyThreshold:
		return dbmysql.AudienceTech
	case business > tech && business > classifyThreshold:
		return dbmysql.AudienceBusiness
	default:
		return dbmysql.AudienceMixed
	}
}

// TechScore rates how technical the text reads, capped at 1.
func (cl *AudienceClassifier) TechScore(text, category string) float64 {
	if len(strings.Fields(text)) == 0 {
		return 0
	}

	score := 0.0
	if _, ok := techCategories[category]; ok {
		score += 0.4
	}

	for group, keywords := range techKeywordGroups {
		matches := countMatches(text, keywords)
		switch group {
		case "programming":
			score += float64(matches) * 0.08
		case "tech_concepts":
			score += float64(matches) * 0.06
		default:
			score += float64(matches) * 0.04
		}
	}

	if codeTokenRe.MatchString(text) {
		score += 0.2
	}
	if sqlVerbRe.MatchString(text) {
		score += 0.15
	}
	if methodCallRe.MatchString(text) {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// BusinessScore rates how business-oriented the text reads, capped at 1.
func (cl *AudienceClassifier) BusinessScore(text, category string) float64 {
	if len(strings.Fields(text)) == 0 {
		return 0
	}

	score := 0.0
	if _, ok := businessCategories[category]; ok {
		score += 0.4
	}

	for group, keywords := range businessKeywordGroups {
		matches := countMatches(text, keywords)
		switch group {
		case "strategy":
			score += float64(matches) * 0.08
		case "management":
			score += float64(matches) * 0.06
		default:
			score += float64(matches) * 0.04
		}
	}

	if moneyPatternRe.MatchString(text) {
		score += 0.15
	}
	if trendPhraseRe.MatchString(text) {
		score += 0.1
	}
	if financeTermRe.MatchString(text) {
		score += 0.1
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func countMatches(text string, keywords []string) int {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matches++
		}
	}
	return matches
}
