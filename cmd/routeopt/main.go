// Command routeopt computes short closed routes through geographic stops or
// explicit cost matrices.
package main

func main() {
	Execute()
}
