// Package subscriptions is the typed client for the /subscriptions
// endpoint group: plans, the account's current subscription, upgrades and
// cancellation, quota usage, and payment history.
package subscriptions
