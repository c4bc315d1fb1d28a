package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; every renderer draws on it in
// registration order.
const Default ecs.LayerID = iota
