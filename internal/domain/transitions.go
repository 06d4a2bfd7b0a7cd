package domain

// Status transitions. The stored enums used to be free-standing with no
// engine behind them; services now reject writes that are not listed
// here. The "overdue" invoice status is a manual write, not derived.

var jobTransitions = map[JobStatus][]JobStatus{
	JobPending:       {JobInProgress},
	JobInProgress:    {JobCompleted},
	JobCompleted:     {JobDelivered, JobUnderWarranty},
	JobDelivered:     {JobUnderWarranty},
	JobUnderWarranty: {},
}

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:     {InvoiceSent, InvoiceCancelled},
	InvoiceSent:      {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue:   {InvoicePaid, InvoiceCancelled},
	InvoicePaid:      {},
	InvoiceCancelled: {},
}

var warrantyTransitions = map[WarrantyStatus][]WarrantyStatus{
	WarrantyActive:   {WarrantyExpired, WarrantyClaimed, WarrantyExtended},
	WarrantyClaimed:  {WarrantyActive, WarrantyExpired},
	WarrantyExtended: {WarrantyExpired, WarrantyClaimed},
	WarrantyExpired:  {},
}

// CanTransitionTo reports whether a job may move to the given status.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	return contains(jobTransitions[s], next)
}

// CanTransitionTo reports whether an invoice may move to the given status.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	return contains(invoiceTransitions[s], next)
}

// CanTransitionTo reports whether a warranty may move to the given status.
func (s WarrantyStatus) CanTransitionTo(next WarrantyStatus) bool {
	return contains(warrantyTransitions[s], next)
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
