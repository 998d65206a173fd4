package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student represents a student record in the students collection.
// ProjectIDs holds the m:n relation to projects; entries are not
// guaranteed to reference a live project.
type Student struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Email      string               `bson:"email" json:"email"`
	Course     string               `bson:"course" json:"course"`
	Branch     string               `bson:"branch" json:"branch"`
	ProjectIDs []primitive.ObjectID `bson:"project_ids" json:"project_ids"`
}

// StudentPatch is a partial update for a student. Only non-nil fields
// are written to the database.
type StudentPatch struct {
	Name   *string
	Email  *string
	Course *string
	Branch *string
}

// SetDocument renders the patch as the document for a $set update,
// containing only the fields that are present.
func (p *StudentPatch) SetDocument() map[string]interface{} {
	doc := make(map[string]interface{})
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Email != nil {
		doc["email"] = *p.Email
	}
	if p.Course != nil {
		doc["course"] = *p.Course
	}
	if p.Branch != nil {
		doc["branch"] = *p.Branch
	}
	return doc
}
