// Command tagctl inspects the vendor tag catalogue compiled into this HAL.
package main

func main() {
	execute()
}
