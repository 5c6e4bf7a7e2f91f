package entities

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionCount is the number of interview questions on the intake form.
const QuestionCount = 7

// AudioContentType is the content type used for recorded answers.
const AudioContentType = "audio/webm"

// Questions holds the interview question texts, index 0 is question 1.
var Questions = [QuestionCount]string{
	"Tell us about a time you helped someone choose a product. What did you do?",
	"Imagine a customer says no to your product. How would you feel and what would you do?",
	"Why do you want to work? What motivates you?",
	"Tell us about a time you had to solve a problem without help. What happened?",
	"How do you get along with people? Give us an example.",
	"What would you do if you had a bad day but still had to work?",
	"Why should we choose you for this position?",
}

var (
	questionTagPattern = regexp.MustCompile(`question(\d+)`)
	objectStampPattern = regexp.MustCompile(`question\d+-(\d+)`)
)

// QuestionKey returns the map key for question n ("question1".."question7").
func QuestionKey(n int) string {
	return "question" + strconv.Itoa(n)
}

// QuestionKeys lists all question keys in order.
func QuestionKeys() []string {
	keys := make([]string, 0, QuestionCount)
	for n := 1; n <= QuestionCount; n++ {
		keys = append(keys, QuestionKey(n))
	}
	return keys
}

// QuestionText returns the text of question n, or "" when n is out of range.
func QuestionText(n int) string {
	if n < 1 || n > QuestionCount {
		return ""
	}
	return Questions[n-1]
}

// QuestionNumber parses a question key back to its number.
func QuestionNumber(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "question"))
	if err != nil || !strings.HasPrefix(key, "question") || n < 1 || n > QuestionCount {
		return 0, false
	}
	return n, true
}

// ParseQuestionTag extracts the question number embedded in an object name.
// Only tags for known questions are recognized.
func ParseQuestionTag(objectName string) (int, bool) {
	m := questionTagPattern.FindStringSubmatch(path.Base(objectName))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > QuestionCount {
		return 0, false
	}
	return n, true
}

// ObjectTimestamp returns the unix-millis stamp embedded in an audio object name.
func ObjectTimestamp(objectName string) int64 {
	m := objectStampPattern.FindStringSubmatch(path.Base(objectName))
	if m == nil {
		return 0
	}
	ts, _ := strconv.ParseInt(m[1], 10, 64)
	return ts
}

// AudioObjectPrefix is the storage namespace of one candidate.
func AudioObjectPrefix(candidateID uuid.UUID) string {
	return candidateID.String() + "/"
}

// AudioObjectKey names the stored recording of one answer.
func AudioObjectKey(candidateID uuid.UUID, question int, at time.Time) string {
	return fmt.Sprintf("%squestion%d-%d.webm", AudioObjectPrefix(candidateID), question, at.UnixMilli())
}
