package memory

import (
	"PathForge/internal/models"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Stores bundles every in-memory store so the app layer can wire them
// in one go and tests can spin up an isolated session.
type Stores struct {
	Users        *UserStore
	Tokens       *TokenStore
	Catalog      *CatalogStore
	Generations  *GenerationStore
	Progress     *ProgressStore
	Social       *SocialStore
	Messages     *MessageStore
	Certificates *CertificateStore
}

func NewStores() *Stores {
	return &Stores{
		Users:        NewUserStore(),
		Tokens:       NewTokenStore(),
		Catalog:      NewCatalogStore(),
		Generations:  NewGenerationStore(),
		Progress:     NewProgressStore(),
		Social:       NewSocialStore(),
		Messages:     NewMessageStore(),
		Certificates: NewCertificateStore(),
	}
}

// SeedDemo loads the demo accounts, catalog, friendships, pending
// requests and a starter chat thread. Every account gets the same demo
// password.
func (s *Stores) SeedDemo(ctx context.Context, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	joined := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)
	demoUsers := []models.User{
		{Name: "John Doe", Email: "demo@pathforge.dev", Avatar: avatarURL(1239291), IsOnline: true},
		{Name: "Alice Johnson", Email: "alice@pathforge.dev", Avatar: avatarURL(1239291), IsOnline: true},
		{Name: "Bob Smith", Email: "bob@pathforge.dev", Avatar: avatarURL(1040881)},
		{Name: "Carol Davis", Email: "carol@pathforge.dev", Avatar: avatarURL(1065084), IsOnline: true},
		{Name: "David Wilson", Email: "david@pathforge.dev", Avatar: avatarURL(1222271), IsOnline: true},
		{Name: "Emma Wilson", Email: "emma@pathforge.dev", Avatar: avatarURL(1181686)},
		{Name: "Michael Brown", Email: "michael@pathforge.dev", Avatar: avatarURL(1043471)},
	}

	ids := make(map[string]uuid.UUID, len(demoUsers))
	for _, u := range demoUsers {
		u.Password = string(hash)
		u.JoinDate = joined
		u.Roles = []string{models.LearnerRole}
		created, err := s.Users.CreateUser(ctx, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		ids[u.Name] = created.ID
	}

	demo := ids["John Doe"]
	for _, friend := range []string{"Alice Johnson", "Bob Smith", "Carol Davis", "David Wilson"} {
		if err := s.Social.AddFriendship(ctx, demo, ids[friend]); err != nil {
			return err
		}
	}

	requested := time.Date(2024, time.January, 19, 14, 30, 0, 0, time.UTC)
	for i, sender := range []string{"Emma Wilson", "Michael Brown"} {
		u, err := s.Users.UserByID(ctx, ids[sender])
		if err != nil {
			return err
		}
		_, err = s.Social.CreateRequest(ctx, models.FriendRequest{
			SenderID:     u.ID,
			ReceiverID:   demo,
			SenderName:   u.Name,
			SenderAvatar: u.Avatar,
			Status:       models.RequestPending,
			CreatedAt:    requested.Add(-time.Duration(i) * 29 * time.Hour),
		})
		if err != nil {
			return err
		}
	}

	alice := ids["Alice Johnson"]
	chatStart := time.Date(2024, time.January, 20, 10, 30, 0, 0, time.UTC)
	starter := []models.Message{
		{SenderID: alice, ReceiverID: demo, Content: "Hey! How's your Full Stack Development course going?", Timestamp: chatStart},
		{SenderID: demo, ReceiverID: alice, Content: "It's going great! Just finished the React fundamentals module.", Timestamp: chatStart.Add(2 * time.Minute)},
		{SenderID: alice, ReceiverID: demo, Content: "That's awesome! The Node.js section is really interesting too.", Timestamp: chatStart.Add(5 * time.Minute)},
	}
	for _, msg := range starter {
		msg.ID = uuid.New()
		msg.Type = models.MessageTypeText
		if err := s.Messages.Append(ctx, msg); err != nil {
			return err
		}
	}

	for _, path := range seedPaths() {
		if _, err := s.Catalog.AddPath(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

func seedPaths() []models.LearningPath {
	return []models.LearningPath{
		{
			Title:         "Full Stack Development",
			Description:   "Master both frontend and backend development with React, Node.js, and databases.",
			Duration:      "12 weeks",
			Level:         models.LevelIntermediate,
			EnrolledCount: 15420,
			Rating:        4.8,
			Category:      "Web Development",
			Image:         pathImageURL(270348),
			Modules: []models.Module{
				{
					ID:          uuid.New(),
					Title:       "React Fundamentals",
					Description: "Learn the basics of React including components, props, and state.",
					Duration:    "2 weeks",
					Type:        models.ModuleTypeVideo,
					Content:     "Introduction to React concepts and component lifecycle...",
				},
				{
					ID:          uuid.New(),
					Title:       "Node.js Backend",
					Description: "Build robust backend APIs with Node.js and Express.",
					Duration:    "3 weeks",
					Type:        models.ModuleTypeVideo,
				},
				{
					ID:          uuid.New(),
					Title:       "Database Integration",
					Description: "Connect your application to databases using MongoDB and PostgreSQL.",
					Duration:    "2 weeks",
					Type:        models.ModuleTypeQuiz,
					Quiz: &models.Quiz{
						ID: uuid.New(),
						Questions: []models.Question{
							{
								ID:       uuid.New(),
								Question: "What is the purpose of middleware in Express.js?",
								Options: []string{
									"To handle HTTP routes",
									"To execute code during request-response cycle",
									"To connect to databases",
									"To render HTML templates",
								},
								CorrectAnswer: 1,
								Explanation:   "Middleware functions execute during the request-response cycle and can modify req/res objects.",
							},
						},
					},
				},
			},
		},
		{
			Title:         "AI with Python",
			Description:   "Dive into artificial intelligence and machine learning using Python and popular frameworks.",
			Duration:      "16 weeks",
			Level:         models.LevelAdvanced,
			EnrolledCount: 8930,
			Rating:        4.9,
			Category:      "Artificial Intelligence",
			Image:         pathImageURL(546819),
			Modules: []models.Module{
				{
					ID:          uuid.New(),
					Title:       "Python for AI",
					Description: "Master Python fundamentals for AI development.",
					Duration:    "3 weeks",
					Type:        models.ModuleTypeVideo,
				},
				{
					ID:          uuid.New(),
					Title:       "Machine Learning Basics",
					Description: "Understanding ML algorithms and implementations.",
					Duration:    "4 weeks",
					Type:        models.ModuleTypeReading,
				},
			},
		},
		{
			Title:         "Cybersecurity Fundamentals",
			Description:   "Learn essential cybersecurity concepts, ethical hacking, and network security.",
			Duration:      "10 weeks",
			Level:         models.LevelBeginner,
			EnrolledCount: 12100,
			Rating:        4.7,
			Category:      "Security",
			Image:         pathImageURL(60504),
		},
		{
			Title:         "React & Node.js",
			Description:   "Build modern web applications with React frontend and Node.js backend.",
			Duration:      "8 weeks",
			Level:         models.LevelIntermediate,
			EnrolledCount: 18750,
			Rating:        4.6,
			Category:      "Web Development",
			Image:         pathImageURL(11035380),
		},
		{
			Title:         "Data Science Mastery",
			Description:   "Comprehensive data science course covering statistics, visualization, and predictive modeling.",
			Duration:      "14 weeks",
			Level:         models.LevelAdvanced,
			EnrolledCount: 9640,
			Rating:        4.8,
			Category:      "Data Science",
			Image:         pathImageURL(590020),
		},
	}
}

func avatarURL(id int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=150", id, id)
}

func pathImageURL(id int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=400", id, id)
}
