package services

import "google.golang.org/genai"

// Response schemas sent with every model call. Each object lists all of its
// properties as required and fixes their ordering to the declaration order.

type field struct {
	name   string
	schema *genai.Schema
}

func objectOf(fields ...field) *genai.Schema {
	s := &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       make(map[string]*genai.Schema, len(fields)),
		Required:         make([]string, 0, len(fields)),
		PropertyOrdering: make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		s.Properties[f.name] = f.schema
		s.Required = append(s.Required, f.name)
		s.PropertyOrdering = append(s.PropertyOrdering, f.name)
	}
	return s
}

func stringType() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func numberType() *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber}
}

func booleanType() *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean}
}

func enumOf(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

var (
	matchedItemSchema = objectOf(
		field{"item", stringType()},
		field{"status", enumOf("Match", "Partial", "No Match")},
		field{"explanation", stringType()},
	)

	sectionMatchSchema = objectOf(
		field{"items", arrayOf(matchedItemSchema)},
		field{"score", numberType()},
	)

	analysisWithScoreSchema = objectOf(
		field{"analysis", stringType()},
		field{"score", numberType()},
	)

	consistencyTextSectionSchema = objectOf(
		field{"items", stringType()},
		field{"score", numberType()},
	)

	consistencyListSectionSchema = objectOf(
		field{"items", arrayOf(stringType())},
		field{"score", numberType()},
	)

	gapResolutionItemSchema = objectOf(
		field{"gap", stringType()},
		field{"resolution", stringType()},
		field{"isResolved", booleanType()},
	)

	gapResolutionSectionSchema = objectOf(
		field{"items", arrayOf(gapResolutionItemSchema)},
		field{"score", numberType()},
	)
)

var RecruiterAnalysisSchema = objectOf(
	field{"jobTitle", stringType()},
	field{"summary", stringType()},
	field{"keyResponsibilitiesMatch", sectionMatchSchema},
	field{"requiredSkillsMatch", sectionMatchSchema},
	field{"niceToHaveSkillsMatch", sectionMatchSchema},
	field{"companyCultureFit", analysisWithScoreSchema},
	field{"salaryAndBenefits", stringType()},
	field{"redFlags", arrayOf(stringType())},
	field{"interviewQuestions", arrayOf(stringType())},
	field{"overallFitScore", numberType()},
	field{"fitExplanation", stringType()},
	field{"compatibilityGaps", arrayOf(stringType())},
)

var PreliminaryDecisionSchema = objectOf(
	field{"decision", enumOf("Recommended for Interview", "Not Recommended")},
	field{"pros", arrayOf(stringType())},
	field{"cons", arrayOf(stringType())},
	field{"explanation", stringType()},
)

var ConsistencyAnalysisSchema = objectOf(
	field{"consistencyScore", numberType()},
	field{"summary", stringType()},
	field{"recommendation", enumOf("Strong Fit", "Partial Fit", "Weak Fit")},
	field{"softSkillsAnalysis", consistencyTextSectionSchema},
	field{"inconsistencies", consistencyListSectionSchema},
	field{"missingFromInterview", consistencyListSectionSchema},
	field{"newInInterview", consistencyListSectionSchema},
	field{"gapResolutions", gapResolutionSectionSchema},
	field{"prosForHiring", arrayOf(stringType())},
	field{"consForHiring", arrayOf(stringType())},
	field{"updatedOverallFitScore", numberType()},
	field{"hiringDecision", enumOf("Recommended for Hire", "Not Recommended")},
)

var RewrittenResumeSchema = objectOf(
	field{"rewrittenResume", stringType()},
)
