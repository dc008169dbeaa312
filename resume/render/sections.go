package render

import "cvforge/resume/model"

// Section heading texts, in document order.
const (
	headingExperience       = "Experience"
	headingEducation        = "Education"
	headingSkills           = "Skills"
	headingCertifications   = "Certifications"
	headingExtracurriculars = "Extracurricular Activities"
	headingProjects         = "Projects"
)

// Each renderer appends its section's blocks to the shared tree. Renderers
// read only their own section of the record and emit text byte-for-byte as
// supplied.

func renderIdentity(doc *Document, info model.PersonalInfo, _ *Registry) {
	doc.Append(Paragraph{
		Style: StyleHeading,
		Align: AlignCenter,
		Runs:  []Run{{Text: info.Name}},
	})

	contactLine := func(text string) {
		doc.Append(Paragraph{
			Style: StyleBody,
			Align: AlignCenter,
			Runs:  []Run{{Text: text}},
		})
	}

	if info.Phone != "" {
		contactLine(info.Phone)
	}
	if info.Email != "" {
		contactLine("Email: " + info.Email)
	}
	if info.LinkedIn != "" {
		contactLine("LinkedIn: " + info.LinkedIn)
	}
	if info.GitHub != "" {
		contactLine("GitHub: " + info.GitHub)
	}
	if info.VisaStatus != "" {
		contactLine(info.VisaStatus)
	}
}

func renderExperience(doc *Document, items []model.Experience, _ *Registry) {
	appendHeading(doc, headingExperience)

	for _, exp := range items {
		appendDatedSubheading(doc, exp.Company+", "+exp.Location, exp.Dates)

		doc.Append(Paragraph{
			Style: StyleBody,
			Runs:  []Run{{Text: exp.Title, Bold: true}},
		})

		for _, point := range exp.BulletPoints {
			appendBullet(doc, point)
		}

		appendSpacer(doc)
	}
}

func renderEducation(doc *Document, items []model.Education, _ *Registry) {
	appendHeading(doc, headingEducation)

	for _, edu := range items {
		appendDatedSubheading(doc, edu.Institution+" | "+edu.Degree, edu.Dates)

		if edu.CGPA != "" {
			doc.Append(Paragraph{
				Style: StyleBody,
				Runs:  []Run{{Text: "CGPA: " + edu.CGPA}},
			})
		}
	}
}

func renderSkills(doc *Document, skills model.Skills, _ *Registry) {
	appendHeading(doc, headingSkills)

	for _, cat := range skills.Categories {
		// A category with no items still prints its label line; the empty
		// value is a deliberate pass-through.
		doc.Append(Paragraph{
			Style: StyleBody,
			Runs: []Run{
				{Text: cat.Name + ": ", Bold: true},
				{Text: joinItems(cat.Items)},
			},
		})
	}
}

func renderCertifications(doc *Document, items []string, _ *Registry) {
	appendHeading(doc, headingCertifications)

	for _, cert := range items {
		appendBullet(doc, cert)
	}
}

func renderExtracurriculars(doc *Document, items []model.Extracurricular, _ *Registry) {
	appendHeading(doc, headingExtracurriculars)

	for _, activity := range items {
		appendDatedSubheading(doc, activity.Organization+" | "+activity.Position, activity.Dates)

		for _, point := range activity.BulletPoints {
			appendBullet(doc, point)
		}
	}
}

func renderProjects(doc *Document, items []model.Project, _ *Registry) {
	appendHeading(doc, headingProjects)

	for _, project := range items {
		doc.Append(Paragraph{
			Style: StyleSubheading,
			Runs:  []Run{{Text: project.Name}},
		})

		if len(project.TechStack) > 0 {
			doc.Append(Paragraph{
				Style: StyleBody,
				Runs:  []Run{{Text: "Tech Stack: " + joinItems(project.TechStack)}},
			})
		}

		for _, point := range project.BulletPoints {
			appendBullet(doc, point)
		}
	}
}

// appendHeading emits a section title with the full-width rule line beneath.
func appendHeading(doc *Document, text string) {
	doc.Append(Paragraph{
		Style:        StyleHeading,
		Runs:         []Run{{Text: text}},
		BottomBorder: true,
	})
}

// appendDatedSubheading pairs left text with a right-justified date column
// via the registry-level tab stop.
func appendDatedSubheading(doc *Document, left, dates string) {
	doc.Append(Paragraph{
		Style:   StyleSubheading,
		DateTab: true,
		Runs: []Run{
			{Text: left},
			{Tab: true},
			{Text: dates},
		},
	})
}

func appendBullet(doc *Document, text string) {
	doc.Append(Paragraph{
		Style:  StyleBullet,
		Align:  AlignJustify,
		Bullet: true,
		Runs:   []Run{{Text: text}},
	})
}

func appendSpacer(doc *Document) {
	doc.Append(Paragraph{Style: StyleBody})
}

func appendCompactSpacer(doc *Document) {
	doc.Append(Paragraph{Style: StyleBody, Compact: true})
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
