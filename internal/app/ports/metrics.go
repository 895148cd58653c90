package ports

type ActionMetrics interface {
	RecordCompleted(cooldownSeconds int)
	RecordSkipped()
	RecordCooldownRejected()
	RecordFailure(kind string)
}
