package a2a

import "time"

const (
	// messageSendPath is the method-equivalent path on the agent endpoint.
	messageSendPath = "/message:send"

	// SkillHandleException is the skill invoked for exception findings.
	SkillHandleException = "handle-exception"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 1
	DefaultRetryDelay = 2 * time.Second
)

const (
	UserAgent = "monitor-srv/1.0"
)
