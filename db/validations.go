package db

import (
	"github.com/auriaahmad/civil-defence/internal"
	"go.mongodb.org/mongo-driver/bson"
)

var collectionsValidators = map[string]bson.M{
	"volunteers": volunteersCollectionValidator,
	"admins":     adminsCollectionValidator,
}

var volunteersCollectionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"fullName", "cnic", "phone", "email", "status"},
		"properties": bson.M{
			"fullName": bson.M{
				"bsonType":    "string",
				"description": "must be a non-empty string and is required",
				"minLength":   2,
			},
			"cnic": bson.M{
				"bsonType":    "string",
				"description": "must be a formatted 13-digit CNIC and is required",
				"pattern":     `^\d{5}-\d{7}-\d$`,
			},
			"email": bson.M{
				"bsonType":    "string",
				"description": "must be an email and is required",
				"pattern":     internal.EmailRegexTemplate,
			},
			"status": bson.M{
				"enum":        []string{string(StatusActive), string(StatusPending), string(StatusInactive)},
				"description": "must be one of the volunteer statuses and is required",
			},
		},
	},
}

var adminsCollectionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "password"},
		"properties": bson.M{
			"_id": bson.M{
				"bsonType":    "string",
				"description": "must be a non-empty username and is required",
				"minLength":   1,
			},
			"password": bson.M{
				"bsonType":    "string",
				"description": "must be a salted password hash and is required",
				"minLength":   8,
			},
		},
	},
}
