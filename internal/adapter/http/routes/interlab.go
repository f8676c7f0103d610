package routes

import (
	"interlab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIdeas          = "/ideas"
	PathEvaluations    = "/evaluations"
	PathImplementation = "/implementation"
	PathDashboard      = "/dashboard"
	PathNominations    = "/nominations"
	PathVotes          = "/votes"
	PathBallot         = "/ballot"
	PathRanking        = "/ranking"
	PathCycles         = "/cycles"
)

func addIdeaRoutes(rg *gin.RouterGroup, ideaHandler *handlers.IdeaHandler, evaluationHandler *handlers.EvaluationHandler) {
	ideas := rg.Group(PathIdeas)
	{
		ideas.POST("", ideaHandler.SubmitIdea)
		ideas.GET("", ideaHandler.ListIdeas)
		ideas.GET("/:id", ideaHandler.GetIdea)
		ideas.PUT("/:id", ideaHandler.EditIdea)
		ideas.POST("/:id/feedbacks", ideaHandler.AddFeedback)
		ideas.PATCH("/:id/implementation", ideaHandler.UpdateImplementation)
		ideas.POST("/:id/evaluation", evaluationHandler.Evaluate)
	}

	evaluations := rg.Group(PathEvaluations)
	{
		evaluations.GET("/pending", evaluationHandler.PendingQueue)
		evaluations.GET("/criteria", evaluationHandler.Criteria)
	}

	rg.GET(PathImplementation, ideaHandler.ImplementationBoard)
	rg.GET(PathDashboard, ideaHandler.Dashboard)
}

func addNominationRoutes(rg *gin.RouterGroup, nominationHandler *handlers.NominationHandler) {
	nominations := rg.Group(PathNominations)
	{
		nominations.POST("", nominationHandler.SubmitNomination)
		nominations.GET("", nominationHandler.ListNominations)
		nominations.GET("/values", nominationHandler.Values)
	}
}

func addVotingRoutes(rg *gin.RouterGroup, votingHandler *handlers.VotingHandler) {
	rg.POST(PathVotes, votingHandler.CastVotes)
	rg.GET(PathBallot+"/:program", votingHandler.Ballot)
	rg.GET(PathRanking+"/:program", votingHandler.Ranking)
}

func addCycleRoutes(rg *gin.RouterGroup, cycleHandler *handlers.CycleHandler) {
	rg.GET(PathCycles+"/:program", cycleHandler.Status)
}
