package model

// ResumeRecord is the canonical validated resume payload consumed by the
// rendering engine. Slice order is presentation order; the renderer never
// sorts, filters, or rewrites entries.
type ResumeRecord struct {
	PersonalInfo     PersonalInfo      `json:"personal_info" yaml:"personal_info"`
	Experience       []Experience      `json:"experience" yaml:"experience"`
	Education        []Education       `json:"education" yaml:"education"`
	Skills           Skills            `json:"skills" yaml:"skills"`
	Certifications   []string          `json:"certifications" yaml:"certifications"`
	Extracurriculars []Extracurricular `json:"extracurriculars" yaml:"extracurriculars"`
	Projects         []Project         `json:"projects" yaml:"projects"`
}

// PersonalInfo captures the identity block. Every field is optional plain
// text; an empty string means the field is absent and its line is skipped.
type PersonalInfo struct {
	Name       string `json:"name" yaml:"name"`
	Phone      string `json:"phone" yaml:"phone"`
	Email      string `json:"email" yaml:"email"`
	Location   string `json:"location" yaml:"location"`
	LinkedIn   string `json:"linkedin" yaml:"linkedin"`
	GitHub     string `json:"github" yaml:"github"`
	VisaStatus string `json:"visa_status" yaml:"visa_status"`
}

// Experience is a work history entry.
type Experience struct {
	Company      string   `json:"company" yaml:"company"`
	Location     string   `json:"location" yaml:"location"`
	Dates        string   `json:"dates" yaml:"dates"`
	Title        string   `json:"title" yaml:"title"`
	BulletPoints []string `json:"bullet_points" yaml:"bullet_points"`
}

// Education is a degree entry. CGPA is optional.
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	CGPA        string `json:"cgpa" yaml:"cgpa"`
	Dates       string `json:"dates" yaml:"dates"`
}

// Skills groups skill items into named categories.
type Skills struct {
	Categories []SkillCategory `json:"categories" yaml:"categories"`
}

// SkillCategory is a labeled list of short skill items.
type SkillCategory struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

// Extracurricular is an activity entry outside of work history.
type Extracurricular struct {
	Organization string   `json:"organization" yaml:"organization"`
	Position     string   `json:"position" yaml:"position"`
	Dates        string   `json:"dates" yaml:"dates"`
	BulletPoints []string `json:"bullet_points" yaml:"bullet_points"`
}

// Project is a notable project entry.
type Project struct {
	Name         string   `json:"name" yaml:"name"`
	TechStack    []string `json:"tech_stack" yaml:"tech_stack"`
	BulletPoints []string `json:"bullet_points" yaml:"bullet_points"`
}
