package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Shoot      *ShootHandler
	Reschedule *RescheduleHandler
	Payment    *PaymentHandler
}
