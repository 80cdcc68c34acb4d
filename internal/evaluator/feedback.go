package evaluator

import (
	"fmt"
	"strings"
)

// Fixed feedback templates. Keyword lists are the only interpolated parts.
const (
	noAnswerAttemptMsg = "You did not provide an answer. In an interview, always attempt an answer, even if you are not fully sure."
	noAnswerDefineMsg  = "Try to at least define the term, then give one example or scenario."
	noAnswerFollowUp   = "Can you try to give a short explanation in your own words, even if you’re not fully confident?"

	noReferenceMsg           = "I don't have a reference answer for this question, so I evaluated mainly based on how clearly you explained."
	noReferenceMoreDetailMsg = "Try to give a bit more detail: define the concept, explain how it works, and give one example."
	noReferenceOkLengthMsg   = "Your explanation has a reasonable length. You can improve further by adding more precise technical details."
)

// coverageMessages is keyed by coverage score.
var coverageMessages = map[int]string{
	5: "Excellent: you covered almost all of the important technical points for this question.",
	4: "Good answer: you covered most of the important concepts, with only a few minor gaps.",
	3: "Your answer is partially correct. You mentioned some key ideas, but you missed a few important concepts.",
	2: "Your answer is somewhat related to the topic, but it misses many core technical points.",
	1: "Your answer is mostly off-topic or missing the main idea. Try to start by defining the term clearly.",
}

const (
	maxMatchedKeywords  = 5
	maxFollowUpKeywords = 3
	// Missing keywords shorter than this are too generic to ask about.
	minFollowUpKeywordLen = 4
)

func coverageFeedback(score int) string {
	if msg, ok := coverageMessages[score]; ok {
		return msg
	}
	return coverageMessages[1]
}

// clarityFeedback collapses the five clarity scores into three bands.
func clarityFeedback(score int) string {
	switch {
	case score >= 4:
		return "Your explanation length is good. In an interview, keep this structure: definition → explanation → example."
	case score == 3:
		return "The explanation length is okay, but you can improve clarity by organizing your answer into clear steps."
	default:
		return "Try to give a slightly longer and more structured explanation: start with a simple definition, then add 1–2 supporting points."
	}
}

// matchedKeywordsFeedback lists up to the first five matched keywords.
// common must already be sorted.
func matchedKeywordsFeedback(common []string) string {
	if len(common) > maxMatchedKeywords {
		common = common[:maxMatchedKeywords]
	}
	return "Good job mentioning key terms like: " + strings.Join(common, ", ") + "."
}

// followUpFromMissing synthesizes a follow-up question from the missing
// keywords, keeping up to three of the longer (more meaningful) ones.
// missing must already be sorted; returns "" when nothing qualifies.
func followUpFromMissing(missing []string) string {
	important := make([]string, 0, maxFollowUpKeywords)
	for _, word := range missing {
		if len(word) < minFollowUpKeywordLen {
			continue
		}
		important = append(important, word)
		if len(important) == maxFollowUpKeywords {
			break
		}
	}
	if len(important) == 0 {
		return ""
	}
	joined := strings.Join(important, ", ")
	return fmt.Sprintf(
		"You did not clearly mention: %s. Can you also explain how %s relates to this question?",
		joined, joined,
	)
}
