package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project represents a project record in the projects collection.
// StudentIDs is the symmetric side of Student.ProjectIDs; the two
// lists are never reconciled by any operation.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Head        string               `bson:"head" json:"head"`
	Description string               `bson:"description,omitempty" json:"description"`
	StudentIDs  []primitive.ObjectID `bson:"student_ids" json:"student_ids"`
}

// ProjectPatch is a partial update for a project. Only non-nil fields
// are written to the database.
type ProjectPatch struct {
	Name        *string
	Head        *string
	Description *string
}

// SetDocument renders the patch as the document for a $set update,
// containing only the fields that are present.
func (p *ProjectPatch) SetDocument() map[string]interface{} {
	doc := make(map[string]interface{})
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Head != nil {
		doc["head"] = *p.Head
	}
	if p.Description != nil {
		doc["description"] = *p.Description
	}
	return doc
}
