// Package order implements the Order aggregate: the cart line engine, the
// lifecycle state machine and the customer edit window.
//
// Key business rules:
//   - An order is created as Draft and is the customer's only open cart
//   - Lines snapshot the product price when they are created
//   - Draft -> Placed -> Exported; Draft or Placed -> Cancelled
//   - A placed order is editable until 22:00 shop time on the day it was
//     placed, or until 22:00 the next day when placed at or after 22:00
//   - Exported orders are immutable
package order
