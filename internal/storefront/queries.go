package storefront

const cartFields = `
id
checkoutUrl
cost {
  totalAmount {
    amount
    currencyCode
  }
}
lines(first: 100) {
  edges {
    node {
      id
      quantity
      merchandise {
        ... on ProductVariant {
          id
          title
          availableForSale
          inventoryManagement
          inventoryPolicy
          quantityAvailable
          price {
            amount
            currencyCode
          }
          product {
            title
            featuredImage {
              url
            }
          }
        }
      }
    }
  }
}
`

const cartCreateMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart {` + cartFields + `}
    userErrors {
      field
      message
    }
  }
}
`

const cartLinesAddMutation = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors {
      field
      message
    }
  }
}
`

const cartLinesUpdateMutation = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {` + cartFields + `}
    userErrors {
      field
      message
    }
  }
}
`

const cartLinesRemoveMutation = `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {` + cartFields + `}
    userErrors {
      field
      message
    }
  }
}
`

const cartQuery = `
query cart($cartId: ID!) {
  cart(id: $cartId) {` + cartFields + `}
}
`

const productsQuery = `
query products($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        handle
        title
        description
        featuredImage {
          url
        }
        variants(first: 20) {
          edges {
            node {
              id
              title
              availableForSale
              inventoryManagement
              inventoryPolicy
              quantityAvailable
              price {
                amount
                currencyCode
              }
            }
          }
        }
      }
    }
  }
}
`
