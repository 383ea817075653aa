package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dtroode/gophfeed-server/internal/api/http/handler"
	"github.com/dtroode/gophfeed-server/internal/api/http/middleware"
	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	accountService handler.AccountService
	sessionService handler.SessionService
	postService    handler.PostService
	likeService    handler.LikeService
	authenticator  middleware.Authenticator
	contextManager model.ContextManager
	allowedOrigins []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	accountService handler.AccountService,
	sessionService handler.SessionService,
	postService handler.PostService,
	likeService handler.LikeService,
	authenticator middleware.Authenticator,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService: accountService,
		sessionService: sessionService,
		postService:    postService,
		likeService:    likeService,
		authenticator:  authenticator,
		contextManager: contextManager,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Register builds the handler tree. Routes under the authenticated group require a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)
	mux.Use(logging.Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: r.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	userHandler := handler.NewUser(r.accountService, r.sessionService, r.contextManager, r.logger)
	postHandler := handler.NewPost(r.postService, r.likeService, r.contextManager, r.logger)

	r.registerPublicRoutes(mux, userHandler, postHandler)

	mux.Group(func(auth chi.Router) {
		auth.Use(authenticate.Handle)
		r.registerUserRoutes(auth, userHandler)
		r.registerPostRoutes(auth, postHandler)
	})

	return mux
}

func (r *Router) registerPublicRoutes(mux chi.Router, users *handler.User, posts *handler.Post) {
	mux.Post("/users", users.SignUp)
	mux.Post("/users/login", users.Login)
	mux.Get("/users", users.Search)
	mux.Get("/users/{id}", users.GetUser)
	mux.Get("/users/{id}/avatar", users.GetAvatar)
	mux.Get("/users/{id}/posts", posts.ListByUser)
	mux.Get("/posts/{id}", posts.Get)
	mux.Get("/posts/{id}/picture", posts.GetPicture)
}

func (r *Router) registerUserRoutes(mux chi.Router, users *handler.User) {
	mux.Post("/users/logout", users.Logout)
	mux.Post("/users/logout-all", users.LogoutAll)
	mux.Get("/users/me", users.Me)
	mux.Patch("/users/me", users.UpdateMe)
	mux.Delete("/users/me", users.DeleteMe)
	mux.Put("/users/me/about", users.SetAbout)
	mux.Put("/users/me/avatar", users.SetAvatar)
	mux.Delete("/users/me/avatar", users.DeleteAvatar)
}

func (r *Router) registerPostRoutes(mux chi.Router, posts *handler.Post) {
	mux.Post("/posts", posts.Create)
	mux.Get("/posts/me", posts.ListMine)
	mux.Get("/posts/liked", posts.ListLiked)
	mux.Delete("/posts/{id}", posts.Delete)
	mux.Put("/posts/{id}/likes", posts.SetLike)
	mux.Put("/posts/{id}/picture", posts.SetPicture)
}
