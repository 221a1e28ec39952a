package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/skills"
)

// Component weights for the overall fit score.
const (
	skillsWeight     = 0.6
	experienceWeight = 0.25
	educationWeight  = 0.15

	// semanticBlend is the share of the overall score taken by the
	// TF-IDF similarity, guarding against pure keyword gaming.
	semanticBlend = 0.1
)

// Breakdown carries the per-signal sub-scores behind an overall fit score.
// All scores are clamped to [0, 100]; matched and missing skills partition
// the canonicalized required skill set.
type Breakdown struct {
	Skills        int      `json:"skills"`
	Experience    int      `json:"experience"`
	Education     int      `json:"education"`
	Semantic      int      `json:"semantic"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ComputeFit scores how well resumeText satisfies the requirements. The
// overall score is a 0.6/0.25/0.15 weighted base of the skill, experience and
// education sub-scores, blended 90/10 with the semantic similarity and
// rounded to two decimals. Malformed requirements fail validation rather
// than defaulting.
func ComputeFit(req Requirements, resumeText string) (float64, *Breakdown, error) {
	if err := req.Validate(); err != nil {
		return 0, nil, err
	}

	sim := CosineSimilarity(requirementText(req), resumeText)

	// Skills: overlap ratio over the required set (vacuous 100 when the
	// company lists no skills).
	reqSkills := make(map[string]struct{}, len(req.Skills))
	reqList := make([]string, 0, len(req.Skills))
	for _, s := range req.Skills {
		c := skills.Canonicalize(s)
		if _, dup := reqSkills[c]; !dup {
			reqSkills[c] = struct{}{}
			reqList = append(reqList, c)
		}
	}
	candSkills := skills.Extract(resumeText, reqList)
	candSet := make(map[string]struct{}, len(candSkills))
	for _, s := range candSkills {
		candSet[s] = struct{}{}
	}

	matched := make([]string, 0, len(reqSkills))
	missing := make([]string, 0, len(reqSkills))
	for s := range reqSkills {
		if _, ok := candSet[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	overlap := 1.0
	if len(reqSkills) > 0 {
		overlap = float64(len(matched)) / float64(len(reqSkills))
	}
	skillsScore := int(math.Round(overlap * 100))

	// Experience: absent or zero requirement is a full score. Any stated
	// experience below the bar still earns at least 40, scaling linearly
	// toward 100 as the candidate approaches the requirement.
	expScore := 100
	if req.Experience != nil && *req.Experience > 0 {
		candYears, _ := MaxYearsOfExperience(resumeText)
		if candYears < 0 {
			candYears = 0
		}
		if candYears >= *req.Experience {
			expScore = 100
		} else {
			ratio := candYears / *req.Experience
			expScore = int(40 + 60*ratio)
		}
	}

	eduScore := EducationScore(req.Education, resumeText)

	weighted := float64(skillsScore)*skillsWeight +
		float64(expScore)*experienceWeight +
		float64(eduScore)*educationWeight

	overall := (1-semanticBlend)*weighted + semanticBlend*(sim*100)
	overall = math.Round(overall*100) / 100

	return overall, &Breakdown{
		Skills:        skillsScore,
		Experience:    expScore,
		Education:     eduScore,
		Semantic:      int(math.Round(sim * 100)),
		MatchedSkills: matched,
		MissingSkills: missing,
	}, nil
}

// requirementText flattens the requirement set into a document for the
// semantic comparison.
func requirementText(req Requirements) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(req.Skills, " "))
	sb.WriteString(" ")
	sb.WriteString(strings.Join(req.Education, " "))
	if req.Experience != nil {
		sb.WriteString(fmt.Sprintf(" %g years experience", *req.Experience))
	}
	return sb.String()
}
