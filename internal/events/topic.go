
package events

// Topic represents a typed event routing key.
// This type is defined here as topics are specifically for event routing.
// Rulebooks define constants of this type for their specific topics.
type Topic string
