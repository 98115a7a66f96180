// Package promotion contains the Promotion aggregate root: coupon codes with
// flat or percentage discounts, validity windows, and usage limits.
package promotion
