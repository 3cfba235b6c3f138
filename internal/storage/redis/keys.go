package redis

import "fmt"

// Key prefix for all playerdna data
const keyPrefix = "playerdna"

// fixtureKey returns the Redis key for a fixture document
func fixtureKey(name string) string {
	return fmt.Sprintf("%s:fixture:%s", keyPrefix, name)
}

// fixtureIndexKey returns the Redis key for the SET of known fixture names
func fixtureIndexKey() string {
	return fmt.Sprintf("%s:idx:fixtures", keyPrefix)
}
