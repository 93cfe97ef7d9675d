package service

import "fmt"

const questionPrompt = `Generate a %s trivia question worth %d points.
Respond with only the question on one line, followed by the answer on the next line.
Make it challenging but fair for the points value.`

func buildQuestionPrompt(topic string, points int) string {
	return fmt.Sprintf(questionPrompt, topic, points)
}
