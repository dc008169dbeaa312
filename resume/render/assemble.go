package render

import "cvforge/resume/model"

// Assemble renders a validated record into a fresh document tree, invoking
// the section renderers in fixed order: identity, experience, education,
// skills, certifications, extracurriculars, projects.
//
// Experience and Skills headings anchor the document and are emitted even
// when their sections are empty; Education, Certifications, Extracurriculars
// and Projects are suppressed entirely (heading included) when empty.
func Assemble(record model.ResumeRecord, reg *Registry) *Document {
	doc := NewDocument()

	renderIdentity(doc, record.PersonalInfo, reg)
	appendSpacer(doc)

	// Experience entries carry their own trailing spacer, so no extra
	// section spacer is added here.
	renderExperience(doc, record.Experience, reg)

	if len(record.Education) > 0 {
		renderEducation(doc, record.Education, reg)
		appendSpacer(doc)
	}

	renderSkills(doc, record.Skills, reg)
	appendCompactSpacer(doc)

	if len(record.Certifications) > 0 {
		renderCertifications(doc, record.Certifications, reg)
		appendCompactSpacer(doc)
	}

	if len(record.Extracurriculars) > 0 {
		renderExtracurriculars(doc, record.Extracurriculars, reg)
		appendSpacer(doc)
	}

	if len(record.Projects) > 0 {
		renderProjects(doc, record.Projects, reg)
		appendSpacer(doc)
	}

	return doc
}
