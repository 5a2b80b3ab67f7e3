package models

type MatchStatus string

const (
	MatchStatusMatch   MatchStatus = "Match"
	MatchStatusPartial MatchStatus = "Partial"
	MatchStatusNoMatch MatchStatus = "No Match"
)

type MatchedItem struct {
	Item        string      `json:"item"`
	Status      MatchStatus `json:"status"`
	Explanation string      `json:"explanation"`
}

type SectionMatch struct {
	Items []MatchedItem `json:"items"`
	Score float64       `json:"score"`
}

type AnalysisWithScore struct {
	Analysis string  `json:"analysis"`
	Score    float64 `json:"score"`
}

// RecruiterAnalysisResult compares a resume against a job description.
type RecruiterAnalysisResult struct {
	JobTitle                 string            `json:"jobTitle"`
	Summary                  string            `json:"summary"`
	KeyResponsibilitiesMatch SectionMatch      `json:"keyResponsibilitiesMatch"`
	RequiredSkillsMatch      SectionMatch      `json:"requiredSkillsMatch"`
	NiceToHaveSkillsMatch    SectionMatch      `json:"niceToHaveSkillsMatch"`
	CompanyCultureFit        AnalysisWithScore `json:"companyCultureFit"`
	SalaryAndBenefits        string            `json:"salaryAndBenefits"`
	RedFlags                 []string          `json:"redFlags"`
	InterviewQuestions       []string          `json:"interviewQuestions"`
	OverallFitScore          float64           `json:"overallFitScore"`
	FitExplanation           string            `json:"fitExplanation"`
	CompatibilityGaps        []string          `json:"compatibilityGaps"`
}

type Decision string

const (
	DecisionRecommendedForInterview Decision = "Recommended for Interview"
	DecisionNotRecommended          Decision = "Not Recommended"
)

type PreliminaryDecisionResult struct {
	Decision    Decision `json:"decision"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Explanation string   `json:"explanation"`
}

type FitRecommendation string

const (
	FitStrong  FitRecommendation = "Strong Fit"
	FitPartial FitRecommendation = "Partial Fit"
	FitWeak    FitRecommendation = "Weak Fit"
)

type HiringDecision string

const (
	HiringRecommended    HiringDecision = "Recommended for Hire"
	HiringNotRecommended HiringDecision = "Not Recommended"
)

type ConsistencyTextSection struct {
	Items string  `json:"items"`
	Score float64 `json:"score"`
}

type ConsistencyListSection struct {
	Items []string `json:"items"`
	Score float64  `json:"score"`
}

type GapResolution struct {
	Gap        string `json:"gap"`
	Resolution string `json:"resolution"`
	IsResolved bool   `json:"isResolved"`
}

type GapResolutionSection struct {
	Items []GapResolution `json:"items"`
	Score float64         `json:"score"`
}

// ConsistencyAnalysisResult compares an interview transcript with the resume,
// the job and the gaps found by an earlier recruiter analysis.
type ConsistencyAnalysisResult struct {
	ConsistencyScore       float64                `json:"consistencyScore"`
	Summary                string                 `json:"summary"`
	Recommendation         FitRecommendation      `json:"recommendation"`
	SoftSkillsAnalysis     ConsistencyTextSection `json:"softSkillsAnalysis"`
	Inconsistencies        ConsistencyListSection `json:"inconsistencies"`
	MissingFromInterview   ConsistencyListSection `json:"missingFromInterview"`
	NewInInterview         ConsistencyListSection `json:"newInInterview"`
	GapResolutions         GapResolutionSection   `json:"gapResolutions"`
	ProsForHiring          []string               `json:"prosForHiring"`
	ConsForHiring          []string               `json:"consForHiring"`
	UpdatedOverallFitScore float64                `json:"updatedOverallFitScore"`
	HiringDecision         HiringDecision         `json:"hiringDecision"`
}

type RewrittenResumeResult struct {
	RewrittenResume string `json:"rewrittenResume"`
}
