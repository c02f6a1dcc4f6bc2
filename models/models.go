package models

// This file serves as the central export point for all database models
// Import this package to access all model types

// All models are automatically exported from their respective files:
// - User, PublicUser from user.go
// - College, Course from catalog.go
// - QuizResult, StudyMaterial from quiz.go

// Database schema overview:
// 1. users - Registered accounts, email unique, bcrypt password hashes
// 2. colleges - Seeded reference data, filtered by location and type
// 3. courses - Seeded reference data, filtered by stream
// 4. quiz_results - One row per quiz submission with score and recommendations
// 5. study_materials - Present in the schema but unused by current handlers
