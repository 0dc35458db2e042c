package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	return nil
}

func (f *FeedConfig) validate() error {
	if f.PageLimit <= 0 {
		return fmt.Errorf("page_limit must be > 0 (got %d)", f.PageLimit)
	}
	if f.MaxPageLimit < f.PageLimit {
		return fmt.Errorf("max_page_limit must be >= page_limit (got %d < %d)", f.MaxPageLimit, f.PageLimit)
	}
	if f.SwipeSeedLimit <= 0 {
		return fmt.Errorf("swipe_seed_limit must be > 0 (got %d)", f.SwipeSeedLimit)
	}
	if f.SwipeFetchLimit <= 0 {
		return fmt.Errorf("swipe_fetch_limit must be > 0 (got %d)", f.SwipeFetchLimit)
	}
	if f.SwipeLowWater < 0 {
		return fmt.Errorf("swipe_low_water must be >= 0 (got %d)", f.SwipeLowWater)
	}
	if f.SwipeLowWater >= f.SwipeSeedLimit {
		return fmt.Errorf("swipe_low_water must be < swipe_seed_limit (got %d >= %d)", f.SwipeLowWater, f.SwipeSeedLimit)
	}
	return nil
}
