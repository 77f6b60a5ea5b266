package core

// Entity is a unique identifier for a renderable entity
type Entity uint64
