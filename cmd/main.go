package main

import (
	"github.com/dev-callsign-hawk/diet-wise/config"
	"github.com/dev-callsign-hawk/diet-wise/routes"
	"github.com/dev-callsign-hawk/diet-wise/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter()
	r.Run(":8080")
}
