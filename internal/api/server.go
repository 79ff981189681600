package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"tfi-timeline/internal/assistant"
	"tfi-timeline/internal/chat"
	"tfi-timeline/internal/community"
	"tfi-timeline/internal/events"
	"tfi-timeline/internal/gamification"
	"tfi-timeline/internal/notify"
	"tfi-timeline/internal/prefs"
	"tfi-timeline/internal/storage"
	"tfi-timeline/internal/subscription"
	"tfi-timeline/internal/timeline"
)

// SessionFactory builds an assistant session bound to the given preferences.
// The server rebuilds the session whenever preferences change so the persona
// context stays current.
type SessionFactory func(p *prefs.Preferences) *assistant.Session

// Server owns all application state and exposes it over HTTP. Mutation only
// happens through the owning stores; handlers never hold their own copies.
type Server struct {
	registry      *timeline.Registry
	userEvents    *events.Collection
	subscriptions *subscription.Service
	preferences   *prefs.Service
	transcript    *chat.Transcript
	notifications *notify.Center
	ledger        *gamification.Ledger
	hub           *community.Hub
	recorder      storage.Recorder

	newSession SessionFactory

	mu         sync.RWMutex
	heroFilter string
	session    *assistant.Session
}

func NewServer(
	registry *timeline.Registry,
	userEvents *events.Collection,
	subscriptions *subscription.Service,
	preferences *prefs.Service,
	transcript *chat.Transcript,
	notifications *notify.Center,
	ledger *gamification.Ledger,
	hub *community.Hub,
	recorder storage.Recorder,
	newSession SessionFactory,
) *Server {
	return &Server{
		registry:      registry,
		userEvents:    userEvents,
		subscriptions: subscriptions,
		preferences:   preferences,
		transcript:    transcript,
		notifications: notifications,
		ledger:        ledger,
		hub:           hub,
		recorder:      recorder,
		newSession:    newSession,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// reachable before onboarding
	api.POST("/onboarding", s.completeOnboarding)
	api.GET("/preferences", s.getPreferences)
	api.GET("/timelines", s.listTimelines)

	gated := api.Group("/")
	gated.Use(s.requireOnboarding())
	{
		gated.PUT("/preferences/language", s.setLanguage)

		gated.GET("/feed", s.getFeed)
		gated.GET("/feed.ics", s.exportFeed)
		gated.PUT("/filter", s.setFilter)
		gated.DELETE("/filter", s.clearFilter)

		gated.GET("/events", s.listEvents)
		gated.POST("/events", s.saveEvent)
		gated.DELETE("/events/:id", s.deleteEvent)

		gated.POST("/timelines/:id/toggle", s.toggleTimeline)
		gated.GET("/subscriptions", s.listSubscriptions)

		gated.GET("/chat", s.getTranscript)
		gated.POST("/chat", s.sendChat)
		gated.POST("/chat/accept", s.acceptProposal)
		gated.POST("/trivia", s.generateTrivia)
		gated.POST("/trivia/answer", s.answerTrivia)
		gated.POST("/prediction", s.generatePrediction)
		gated.GET("/livefeed", s.liveFeed)

		gated.GET("/notifications", s.listNotifications)
		gated.POST("/notifications/:id/read", s.readNotification)

		gated.GET("/gamification", s.getGamification)

		gated.GET("/community/threads", s.listThreads)
		gated.POST("/community/threads", s.createThread)
		gated.GET("/community/threads/:id", s.viewThread)
		gated.POST("/community/threads/:id/reply", s.replyThread)

		gated.GET("/stats", s.getStats)
	}

	return r
}

// requireOnboarding blocks application routes until onboarding completed.
func (s *Server) requireOnboarding() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.preferences.IsOnboarded() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "complete onboarding first"})
			return
		}
		c.Next()
	}
}

func (s *Server) currentSession() *assistant.Session {
	s.mu.RLock()
	sess := s.session
	s.mu.RUnlock()
	if sess != nil {
		return sess
	}
	return s.rebuildSession()
}

func (s *Server) rebuildSession() *assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = s.newSession(s.preferences.Get())
	return s.session
}

func (s *Server) activeFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heroFilter
}

func (s *Server) setActiveFilter(f string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heroFilter = f
}
