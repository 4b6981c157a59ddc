package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// Category represents a course category
type Category string

// Course categories
const (
	CategoryWebDevelopment         Category = "Web Development"
	CategoryMobileDevelopment      Category = "Mobile Development"
	CategoryDataScience            Category = "Data Science"
	CategoryMachineLearning        Category = "Machine Learning"
	CategoryArtificialIntelligence Category = "Artificial Intelligence"
	CategoryBlockchain             Category = "Blockchain"
	CategoryCybersecurity          Category = "Cybersecurity"
	CategoryCloudComputing         Category = "Cloud Computing"
	CategoryDevOps                 Category = "DevOps"
	CategoryOther                  Category = "Other"
)

// Categories lists all valid course categories.
var Categories = []Category{
	CategoryWebDevelopment,
	CategoryMobileDevelopment,
	CategoryDataScience,
	CategoryMachineLearning,
	CategoryArtificialIntelligence,
	CategoryBlockchain,
	CategoryCybersecurity,
	CategoryCloudComputing,
	CategoryDevOps,
	CategoryOther,
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Difficulty represents a course difficulty level
type Difficulty string

// Course difficulty levels
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// IsValid reports whether d is a known difficulty level.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// MaterialType represents the kind of a course material
type MaterialType string

// Course material types
const (
	MaterialAssignment MaterialType = "assignment"
	MaterialQuiz       MaterialType = "quiz"
	MaterialLecture    MaterialType = "lecture"
	MaterialReading    MaterialType = "reading"
	MaterialOther      MaterialType = "other"
)

// IsValid reports whether m is a known material type.
func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialAssignment, MaterialQuiz, MaterialLecture, MaterialReading, MaterialOther:
		return true
	}
	return false
}
