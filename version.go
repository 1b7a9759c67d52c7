package pourbaix

// Version is the current release of the pourbaix module.
const Version = "0.4.1"
