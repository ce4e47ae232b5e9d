package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/enneatest/api/internal/account"
	"github.com/enneatest/api/internal/admin"
	"github.com/enneatest/api/internal/auth"
	"github.com/enneatest/api/internal/config"
	"github.com/enneatest/api/internal/dealer"
	"github.com/enneatest/api/internal/exam"
	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/student"
	"github.com/enneatest/api/internal/submission"
	"github.com/enneatest/api/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&account.Account{},
		&submission.TestSubmission{},
	); err != nil {
		log.Fatal("migration failed: ", err)
	}

	auth.Init(cfg.JWTSecret)

	if err := seedAdmin(db, cfg); err != nil {
		log.Fatal("admin seed failed: ", err)
	}

	// Handlers
	authHandler := auth.NewHandler(db)
	adminHandler := admin.NewHandler(db)
	dealerHandler := dealer.NewHandler(db)
	studentHandler := student.NewHandler(db)
	examHandler := exam.NewHandler(db)

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public auth routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Everything below requires a valid token
	protected := api.NewRoute().Subrouter()
	protected.Use(authHandler.Middleware)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	protected.Handle("/admin/stats",
		auth.Require(policy.OpViewAdminStats, http.HandlerFunc(adminHandler.Stats))).Methods("GET")
	protected.Handle("/admin/dealers",
		auth.Require(policy.OpListDealers, http.HandlerFunc(adminHandler.ListDealers))).Methods("GET")
	protected.Handle("/admin/dealers",
		auth.Require(policy.OpCreateDealer, http.HandlerFunc(adminHandler.CreateDealer))).Methods("POST")
	protected.Handle("/admin/dealers/{id}",
		auth.Require(policy.OpUpdateDealer, http.HandlerFunc(adminHandler.UpdateDealer))).Methods("PUT")
	protected.Handle("/admin/dealers/{id}",
		auth.Require(policy.OpDeleteDealer, http.HandlerFunc(adminHandler.DeleteDealer))).Methods("DELETE")

	protected.Handle("/dealer/stats",
		auth.Require(policy.OpViewDealerStats, http.HandlerFunc(dealerHandler.Stats))).Methods("GET")
	protected.Handle("/dealer/students",
		auth.Require(policy.OpListStudents, http.HandlerFunc(dealerHandler.ListStudents))).Methods("GET")
	protected.Handle("/dealer/students",
		auth.Require(policy.OpCreateStudent, http.HandlerFunc(dealerHandler.CreateStudent))).Methods("POST")
	protected.Handle("/dealer/students/{id}",
		auth.Require(policy.OpUpdateStudent, http.HandlerFunc(dealerHandler.UpdateStudent))).Methods("PUT")
	protected.Handle("/dealer/students/{id}",
		auth.Require(policy.OpDeleteStudent, http.HandlerFunc(dealerHandler.DeleteStudent))).Methods("DELETE")

	protected.Handle("/student/info",
		auth.Require(policy.OpViewOwnInfo, http.HandlerFunc(studentHandler.Info))).Methods("GET")
	protected.Handle("/student/results",
		auth.Require(policy.OpViewOwnResults, http.HandlerFunc(studentHandler.Results))).Methods("GET")

	protected.Handle("/test/questions",
		auth.Require(policy.OpViewQuestions, http.HandlerFunc(examHandler.Questions))).Methods("GET")
	protected.Handle("/test/submit",
		auth.Require(policy.OpSubmitTest, http.HandlerFunc(examHandler.Submit))).Methods("POST")

	handler := cors.AllowAll().Handler(r)

	log.Printf("server running on http://localhost:%s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, handler))
}

// seedAdmin creates the bootstrap admin account if it does not exist yet.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	repo := account.NewRepository()
	_, err := repo.FindByEmail(db, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	adm := account.Account{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     policy.RoleAdmin,
	}
	if err := repo.Create(db, &adm); err != nil {
		return err
	}
	log.Printf("initial admin user created: %s", cfg.AdminEmail)
	return nil
}
