package constants

import "time"

const (
	CacheKeyCommandTemplateList = "mcc:command-builders:list"
)

const (
	CacheExpireCommandTemplateList = 10 * time.Minute
)
