package models

// Workshop is an entry of the repair shop directory.
type Workshop struct {
	ID           string   `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Address      string   `bson:"address" json:"address"`
	Neighborhood string   `bson:"neighborhood" json:"neighborhood"`
	Services     []string `bson:"services" json:"services"`
}
