// meta/meta.go
package meta

// DEFAULT_GOROUTINES defines the number of sampling workers.
const DEFAULT_GOROUTINES = 8

// DEFAULT_EPISODES defines the number of sampled plays per estimate.
const DEFAULT_EPISODES = 10000

// DEFAULT_SEED seeds the first sampling worker; worker i uses DEFAULT_SEED+i.
const DEFAULT_SEED = 1
