// messages.go contains message templates shown on the console.

package console

const (
	msgWelcome         = "Welcome to Terminal Jeopardy!"
	msgInitializing    = "Initializing game board with %s..."
	msgGeneratingTopic = "Generating questions for %s..."
	msgBoardTitle      = "Jeopardy Board"
	msgCurrentScore    = "Current Score: $%d"
	msgContinue        = "Do you want to continue playing?"
	msgChooseTopic     = "Choose a category"
	msgChoosePoints    = "Choose points"
	msgNoQuestionsLeft = "No more questions in this category!"
	msgQuestionHeader  = "Question (%s for $%d):"
	msgYourAnswer      = "Your answer"
	msgCorrect         = "Correct!"
	msgIncorrect       = "Sorry, the correct answer was: %s"
	msgThanks          = "Thanks for playing!"
	msgGameOver        = "Game Over! Final Score: $%d"
	msgBestScores      = "Best scores:"
	msgBestScoreLine   = "%2d. $%d  (%d/%d answered, %s)"
	msgAnsweredCell    = "----"
)

// Prompt validation messages.
const (
	msgInvalidChoice  = "Please select one of the available options"
	msgInvalidConfirm = "Please enter Y or N"
)
