// Package mongouri assembles MongoDB connection strings from their parts.
package mongouri

import (
	"fmt"
)

const (
	DefaultScheme   = "mongodb+srv"
	DefaultUsername = "username"
	DefaultCluster  = "cluster.mongodb.net"
	DefaultDatabase = "database"

	redactedPassword = "***"
)

// ConnectionString holds the parts of a mongodb+srv URI. EncodedPassword
// must already be percent-encoded; String does not escape anything.
type ConnectionString struct {
	Scheme          string
	Username        string
	Cluster         string
	Database        string
	EncodedPassword string
}

func New(username, cluster, database, encodedPassword string) *ConnectionString {
	return &ConnectionString{
		Scheme:          DefaultScheme,
		Username:        username,
		Cluster:         cluster,
		Database:        database,
		EncodedPassword: encodedPassword,
	}
}

func (cs *ConnectionString) String() string {
	return fmt.Sprintf("%s://%s:%s@%s/%s",
		cs.Scheme, cs.Username, cs.EncodedPassword, cs.Cluster, cs.Database)
}

// Redacted returns the connection string with the password replaced,
// safe for log output.
func (cs *ConnectionString) Redacted() string {
	return fmt.Sprintf("%s://%s:%s@%s/%s",
		cs.Scheme, cs.Username, redactedPassword, cs.Cluster, cs.Database)
}
