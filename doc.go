// Package ytd computes the annualized year-to-date return on investment of an
// account holding cash and security positions.
//
// The current Position and the full list of Transactions that produced it are
// enough to rebuild the position as of the first day of the year: every
// transaction of the year is reverted, most recent first. Both positions are
// then valued with a PriceSource and the relative gain is annualized to the
// length of the year found in the Preferences.
//
// Amounts, quantities and percentages are decimal values with two fractional
// digits, rounded half away from zero.
//
// This package serves as the foundational logic for the `ytd` command-line
// tool.
package ytd
