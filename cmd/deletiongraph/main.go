// Command deletiongraph mencetak urutan cascade dan preview penghapusan sebagai YAML.
package main

func main() {
	Execute()
}
