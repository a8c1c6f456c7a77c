// Package regime classifies droplet formation in microfluidic T-junctions.
//
// Whether a junction drips monodisperse droplets or jets an unstable
// thread depends on the balance of viscous, inertial, and interfacial
// forces, captured by the capillary and Weber numbers:
//
//	Ca = mu * U / sigma
//	We = rho * U² * D_h / sigma
//
// For T-junction geometries the dripping-to-jetting transition sits
// around Ca = 0.1 (Anna et al., 2003). The package converts syringe
// pump settings to mean velocities, evaluates both numbers, and labels
// each operating point so a flow rate sweep can be checked against the
// stable dripping window before committing to an experiment.
package regime
